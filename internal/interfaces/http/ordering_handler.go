package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/skyllex94/orderexpress-api/internal/application/dto"
	"github.com/skyllex94/orderexpress-api/internal/application/usecase"
	"github.com/skyllex94/orderexpress-api/internal/domain"
)

// OrderingHandler hoja de pedido a proveedor (sección ordering).
type OrderingHandler struct {
	uc *usecase.OrderingUseCase
}

// NewOrderingHandler construye el handler.
func NewOrderingHandler(uc *usecase.OrderingUseCase) *OrderingHandler {
	return &OrderingHandler{uc: uc}
}

// OrderSheet godoc
// @Summary      Generar la hoja de pedido PDF de un proveedor
// @Tags         ordering
// @Security     Bearer
// @Produce      application/pdf
// @Param        businessID  path  string  true  "ID del negocio"
// @Param        vendorID    path  string  true  "ID del proveedor"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID}/ordering/vendors/{vendorID}/order-sheet [get]
func (h *OrderingHandler) OrderSheet(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.VendorOrderSheet(c.Context(), c.Params("businessID"), c.Params("vendorID"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="order-sheet.pdf"`)
	return c.Send(pdfBytes)
}
