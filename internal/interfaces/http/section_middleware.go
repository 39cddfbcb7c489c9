package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/skyllex94/orderexpress-api/internal/application/dto"
	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

// Local con el rol resuelto, para que los handlers no lo resuelvan dos veces.
const LocalRole = "role"

// roleResolver es el contrato mínimo que necesita el middleware.
// Lo implementa *usecase.RoleService; el uso de interfaz evita el import circular.
type roleResolver interface {
	ResolveRole(ctx context.Context, userID, businessID string) (string, error)
}

// RequireSection devuelve un middleware Fiber que resuelve el rol del usuario
// en el negocio de la ruta (:businessID) y verifica que la sección le esté
// permitida. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 404 Not Found → el negocio no existe.
//   - 403 Forbidden → sin rol en el negocio, o la sección no está en su menú.
//   - 503 Service Unavailable → fallo de infraestructura al resolver el rol.
//   - Si no hay user_id en el contexto, responde 401 (el AuthMiddleware debería haberlo puesto).
//
// `settings` siempre pasa para cualquier rol resoluble.
func RequireSection(section string, roles roleResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}
		businessID := c.Params("businessID")
		if businessID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "MISSING_ID",
				Message: "businessID es requerido en la ruta",
			})
		}

		role, err := roles.ResolveRole(c.Context(), userID, businessID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
					Code:    "NOT_FOUND",
					Message: "negocio no encontrado",
				})
			case errors.Is(err, domain.ErrNoRole):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Code:    "NO_ROLE",
					Message: "sin rol en este negocio",
				})
			default:
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
					Code:    "ROLE_CHECK_FAILED",
					Message: "no se pudo verificar el rol, intente más tarde",
				})
			}
		}

		if !entity.CanAccessSection(role, section) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "SECTION_FORBIDDEN",
				Message: "la sección '" + section + "' no está disponible para el rol " + role,
			})
		}

		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetRole devuelve el rol resuelto por RequireSection.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
