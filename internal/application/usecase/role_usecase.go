package usecase

import (
	"context"
	"fmt"

	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

// RoleService resuelve el rol efectivo de un usuario dentro de un negocio.
// Es el único punto de la aplicación que conoce la regla de propiedad:
// el creador del negocio es admin incondicional, por encima de cualquier
// asignación almacenada para ese par.
type RoleService struct {
	businessRepo repository.BusinessRepository
	roleRepo     repository.RoleAssignmentRepository
}

// NewRoleService construye el servicio de roles.
func NewRoleService(businessRepo repository.BusinessRepository, roleRepo repository.RoleAssignmentRepository) *RoleService {
	return &RoleService{businessRepo: businessRepo, roleRepo: roleRepo}
}

// ResolveRole devuelve el rol efectivo del usuario en el negocio.
//   - Creador del negocio ⇒ admin, ignorando cualquier asignación.
//   - Si no, la asignación almacenada en user_business_roles.
//   - Sin asignación ⇒ domain.ErrNoRole. (El dashboard original caía a admin en
//     este caso; era un bug y aquí se deniega el acceso.)
//
// Devuelve domain.ErrNotFound si el negocio no existe.
func (s *RoleService) ResolveRole(ctx context.Context, userID, businessID string) (string, error) {
	if userID == "" || businessID == "" {
		return "", fmt.Errorf("roles: userID y businessID son obligatorios")
	}
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return "", err
	}
	if business == nil {
		return "", domain.ErrNotFound
	}
	if business.IsOwnedBy(userID) {
		return entity.RoleAdmin, nil
	}
	assignment, err := s.roleRepo.GetByUserAndBusiness(ctx, userID, businessID)
	if err != nil {
		return "", err
	}
	if assignment == nil {
		return "", domain.ErrNoRole
	}
	return assignment.Role, nil
}
