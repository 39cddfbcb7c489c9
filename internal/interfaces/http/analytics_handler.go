package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skyllex94/orderexpress-api/internal/application/dto"
	"github.com/skyllex94/orderexpress-api/internal/application/usecase"
)

// AnalyticsHandler métricas de lectura (secciones overview y analytics).
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Overview godoc
// @Summary      Contadores de la portada del dashboard
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        businessID  path  string  true  "ID del negocio"
// @Success      200  {object}  dto.OverviewResponse
// @Router       /api/businesses/{businessID}/overview [get]
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context(), c.Params("businessID"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Analytics godoc
// @Summary      Valor de inventario total y por categoría
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        businessID  path  string  true  "ID del negocio"
// @Success      200  {object}  dto.AnalyticsResponse
// @Router       /api/businesses/{businessID}/analytics [get]
func (h *AnalyticsHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.uc.Analytics(c.Context(), c.Params("businessID"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
