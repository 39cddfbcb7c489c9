package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skyllex94/orderexpress-api/internal/application/dto"
	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

// MemberUseCase gestión del personal de un negocio: listar miembros con su rol
// efectivo, cambiar roles y quitar miembros. Todas las operaciones de escritura
// requieren rol admin del solicitante; el dueño nunca puede ser modificado.
type MemberUseCase struct {
	businessRepo repository.BusinessRepository
	roleRepo     repository.RoleAssignmentRepository
	userRepo     repository.UserRepository
	roles        *RoleService
}

// NewMemberUseCase construye el caso de uso.
func NewMemberUseCase(
	businessRepo repository.BusinessRepository,
	roleRepo repository.RoleAssignmentRepository,
	userRepo repository.UserRepository,
	roles *RoleService,
) *MemberUseCase {
	return &MemberUseCase{businessRepo: businessRepo, roleRepo: roleRepo, userRepo: userRepo, roles: roles}
}

// List devuelve los miembros del negocio: el dueño (admin implícito) más las
// asignaciones de rol. Cualquier miembro puede consultar la lista.
func (uc *MemberUseCase) List(ctx context.Context, requesterID, businessID string) ([]dto.MemberResponse, error) {
	if _, err := uc.roles.ResolveRole(ctx, requesterID, businessID); err != nil {
		return nil, err
	}
	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	var members []dto.MemberResponse
	if owner, err := uc.userRepo.GetByID(ctx, business.CreatedBy); err != nil {
		return nil, err
	} else if owner != nil {
		members = append(members, dto.MemberResponse{
			UserID:   owner.ID,
			Email:    owner.Email,
			Name:     owner.FullName(),
			Role:     entity.RoleAdmin,
			IsOwner:  true,
			JoinedAt: business.CreatedAt,
		})
	}

	assignments, err := uc.roleRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		if a.UserID == business.CreatedBy {
			// El dueño ya está listado como admin implícito
			continue
		}
		user, err := uc.userRepo.GetByID(ctx, a.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			continue
		}
		members = append(members, dto.MemberResponse{
			UserID:   user.ID,
			Email:    user.Email,
			Name:     user.FullName(),
			Role:     a.Role,
			JoinedAt: a.CreatedAt,
		})
	}
	return members, nil
}

// UpdateRole cambia el rol de un miembro (upsert de la asignación).
// El rol del dueño no es editable: es admin por propiedad, no por asignación.
func (uc *MemberUseCase) UpdateRole(ctx context.Context, requesterID, businessID, memberID string, in dto.UpdateMemberRoleRequest) error {
	role, err := uc.roles.ResolveRole(ctx, requesterID, businessID)
	if err != nil {
		return err
	}
	if role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if !entity.ValidRole(in.Role) {
		return domain.ErrInvalidInput
	}
	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return err
	}
	if business == nil {
		return domain.ErrNotFound
	}
	if business.IsOwnedBy(memberID) {
		return domain.ErrConflict
	}
	existing, err := uc.roleRepo.GetByUserAndBusiness(ctx, memberID, businessID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNoRole
	}
	now := time.Now()
	return uc.roleRepo.Upsert(ctx, &entity.RoleAssignment{
		ID:         uuid.New().String(),
		UserID:     memberID,
		BusinessID: businessID,
		Role:       in.Role,
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  now,
	})
}

// Remove quita a un miembro del negocio eliminando su asignación de rol.
// El dueño no puede quitarse a sí mismo ni ser quitado.
func (uc *MemberUseCase) Remove(ctx context.Context, requesterID, businessID, memberID string) error {
	role, err := uc.roles.ResolveRole(ctx, requesterID, businessID)
	if err != nil {
		return err
	}
	if role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return err
	}
	if business == nil {
		return domain.ErrNotFound
	}
	if business.IsOwnedBy(memberID) {
		return domain.ErrConflict
	}
	return uc.roleRepo.Delete(ctx, memberID, businessID)
}
