package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/skyllex94/orderexpress-api/internal/application/dto"
	"github.com/skyllex94/orderexpress-api/internal/application/usecase"
	"github.com/skyllex94/orderexpress-api/internal/domain"
)

// InvitationHandler ciclo de vida de invitaciones. Validate y Accept son
// públicos (la persona invitada aún no tiene sesión); el resto va detrás de
// auth + sección settings.
type InvitationHandler struct {
	uc *usecase.InvitationUseCase
}

// NewInvitationHandler construye el handler.
func NewInvitationHandler(uc *usecase.InvitationUseCase) *InvitationHandler {
	return &InvitationHandler{uc: uc}
}

// invitationError mapea la taxonomía de errores de invitación a HTTP.
// La pantalla pública distingue cada causa para mostrar el mensaje correcto.
func invitationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInvitationToken):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token con formato inválido"})
	case errors.Is(err, domain.ErrInvitationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVITATION_NOT_FOUND", Message: "invitación no encontrada"})
	case errors.Is(err, domain.ErrInvitationNotPending):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVITATION_NOT_PENDING", Message: "la invitación ya fue usada o cancelada"})
	case errors.Is(err, domain.ErrInvitationExpired):
		return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Code: "INVITATION_EXPIRED", Message: "la invitación expiró"})
	case errors.Is(err, domain.ErrInvitationEmailMismatch):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "EMAIL_MISMATCH", Message: "el email no coincide con el de la invitación"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol admin"})
	case errors.Is(err, domain.ErrNoRole):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_ROLE", Message: "sin rol en este negocio"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rol inválido"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Invitar a un email con un rol
// @Tags         invitations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        businessID  path  string  true  "ID del negocio"
// @Param        body  body  dto.CreateInvitationRequest  true  "Email y rol"
// @Success      201   {object}  dto.InvitationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID}/invitations [post]
func (h *InvitationHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	businessID := c.Params("businessID")
	var in dto.CreateInvitationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y role son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), userID, businessID, in)
	if err != nil {
		if out != nil {
			// Invitación creada pero el email falló: 502 con la invitación en el
			// cuerpo para que el cliente ofrezca el reenvío manual.
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"invitation": out,
				"error":      dto.ErrorResponse{Code: "EMAIL_FAILED", Message: "invitación creada pero el email no se pudo enviar; use el reenvío"},
			})
		}
		return invitationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar invitaciones del negocio
// @Tags         invitations
// @Security     Bearer
// @Produce      json
// @Param        businessID  path  string  true  "ID del negocio"
// @Success      200  {object}  dto.InvitationListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID}/invitations [get]
func (h *InvitationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByBusiness(c.Context(), GetUserID(c), c.Params("businessID"))
	if err != nil {
		return invitationError(c, err)
	}
	return c.JSON(out)
}

// Resend godoc
// @Summary      Reenviar el email de una invitación pending
// @Tags         invitations
// @Security     Bearer
// @Param        businessID    path  string  true  "ID del negocio"
// @Param        invitationID  path  string  true  "ID de la invitación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID}/invitations/{invitationID}/resend [post]
func (h *InvitationHandler) Resend(c *fiber.Ctx) error {
	err := h.uc.Resend(c.Context(), GetUserID(c), c.Params("businessID"), c.Params("invitationID"))
	if err != nil {
		return invitationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cancel godoc
// @Summary      Cancelar una invitación pending
// @Tags         invitations
// @Security     Bearer
// @Param        businessID    path  string  true  "ID del negocio"
// @Param        invitationID  path  string  true  "ID de la invitación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID}/invitations/{invitationID} [delete]
func (h *InvitationHandler) Cancel(c *fiber.Ctx) error {
	err := h.uc.Cancel(c.Context(), GetUserID(c), c.Params("businessID"), c.Params("invitationID"))
	if err != nil {
		return invitationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Validate godoc
// @Summary      Validar un token de invitación (público, no lo consume)
// @Tags         invitations
// @Produce      json
// @Param        token  query  string  true  "Token de la invitación"
// @Success      200  {object}  dto.ValidateInvitationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      410  {object}  dto.ErrorResponse
// @Router       /invitations/validate [get]
func (h *InvitationHandler) Validate(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token es requerido"})
	}
	out, err := h.uc.Validate(c.Context(), token)
	if err != nil {
		return invitationError(c, err)
	}
	return c.JSON(out)
}

// Accept godoc
// @Summary      Aceptar una invitación (público)
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AcceptInvitationRequest  true  "Token y credenciales"
// @Success      200   {object}  dto.AcceptInvitationResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      410   {object}  dto.ErrorResponse
// @Router       /invitations/accept [post]
func (h *InvitationHandler) Accept(c *fiber.Ctx) error {
	var in dto.AcceptInvitationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Token == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token, email y password son requeridos"})
	}
	out, err := h.uc.Accept(c.Context(), in)
	if err != nil {
		return invitationError(c, err)
	}
	return c.JSON(out)
}
