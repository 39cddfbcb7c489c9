package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/skyllex94/orderexpress-api/internal/application/dto"
	"github.com/skyllex94/orderexpress-api/internal/application/usecase"
	"github.com/skyllex94/orderexpress-api/internal/domain"
)

// MemberHandler personal del negocio (sección settings).
type MemberHandler struct {
	uc *usecase.MemberUseCase
}

// NewMemberHandler construye el handler.
func NewMemberHandler(uc *usecase.MemberUseCase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

func memberError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol admin"})
	case errors.Is(err, domain.ErrNoRole):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_ROLE", Message: "sin rol en este negocio"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio o miembro no encontrado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OWNER_IMMUTABLE", Message: "el dueño no puede ser modificado ni eliminado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rol inválido"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// List godoc
// @Summary      Listar miembros del negocio con su rol efectivo
// @Tags         members
// @Security     Bearer
// @Produce      json
// @Param        businessID  path  string  true  "ID del negocio"
// @Success      200  {array}  dto.MemberResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID}/members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c), c.Params("businessID"))
	if err != nil {
		return memberError(c, err)
	}
	return c.JSON(out)
}

// UpdateRole godoc
// @Summary      Cambiar el rol de un miembro
// @Tags         members
// @Security     Bearer
// @Accept       json
// @Param        businessID  path  string  true  "ID del negocio"
// @Param        memberID    path  string  true  "ID del miembro"
// @Param        body  body  dto.UpdateMemberRoleRequest  true  "Nuevo rol"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID}/members/{memberID}/role [put]
func (h *MemberHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateMemberRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "role es requerido"})
	}
	if err := h.uc.UpdateRole(c.Context(), GetUserID(c), c.Params("businessID"), c.Params("memberID"), in); err != nil {
		return memberError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Remove godoc
// @Summary      Quitar a un miembro del negocio
// @Tags         members
// @Security     Bearer
// @Param        businessID  path  string  true  "ID del negocio"
// @Param        memberID    path  string  true  "ID del miembro"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID}/members/{memberID} [delete]
func (h *MemberHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Context(), GetUserID(c), c.Params("businessID"), c.Params("memberID")); err != nil {
		return memberError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
