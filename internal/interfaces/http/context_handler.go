package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/skyllex94/orderexpress-api/internal/application/dto"
	"github.com/skyllex94/orderexpress-api/internal/application/usecase"
	"github.com/skyllex94/orderexpress-api/internal/domain"
)

// ContextHandler contexto de sesión del shell del dashboard (protegido).
type ContextHandler struct {
	uc *usecase.ContextUseCase
}

// NewContextHandler construye el handler.
func NewContextHandler(uc *usecase.ContextUseCase) *ContextHandler {
	return &ContextHandler{uc: uc}
}

// Get godoc
// @Summary      Contexto del dashboard: negocio actual, rol y secciones
// @Tags         context
// @Security     Bearer
// @Produce      json
// @Param        section  query  string  false  "Sección que el cliente quiere abrir"
// @Success      200  {object}  dto.ContextResponse
// @Router       /api/context [get]
func (h *ContextHandler) Get(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	out, err := h.uc.DashboardContext(c.Context(), userID, c.Query("section"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SwitchBusiness godoc
// @Summary      Cambiar el negocio actual
// @Tags         context
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SwitchBusinessRequest  true  "Negocio destino"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/context/business [put]
func (h *ContextHandler) SwitchBusiness(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	var in dto.SwitchBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.BusinessID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "business_id es requerido"})
	}
	if err := h.uc.SwitchBusiness(c.Context(), userID, in.BusinessID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
		case errors.Is(err, domain.ErrNoRole):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_ROLE", Message: "sin rol en este negocio"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetSidebar godoc
// @Summary      Persistir el estado del sidebar
// @Tags         context
// @Security     Bearer
// @Accept       json
// @Success      204
// @Router       /api/context/sidebar [put]
func (h *ContextHandler) SetSidebar(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	var in dto.SidebarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetSidebarCollapsed(c.Context(), userID, in.Collapsed); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
