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

// BusinessUseCase aplica reglas de negocio para los negocios/tenants.
type BusinessUseCase struct {
	repo     repository.BusinessRepository
	roleRepo repository.RoleAssignmentRepository
	prefRepo repository.PreferenceRepository
}

// NewBusinessUseCase construye el caso de uso con los puertos de persistencia.
func NewBusinessUseCase(
	repo repository.BusinessRepository,
	roleRepo repository.RoleAssignmentRepository,
	prefRepo repository.PreferenceRepository,
) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, roleRepo: roleRepo, prefRepo: prefRepo}
}

// Create crea un negocio con el usuario como dueño y lo fija como negocio
// actual (es lo que el dashboard espera tras el onboarding).
func (uc *BusinessUseCase) Create(ctx context.Context, userID string, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	now := time.Now()
	business := &entity.Business{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, business); err != nil {
		return nil, err
	}
	_ = uc.prefRepo.SetCurrentBusiness(ctx, userID, business.ID)
	return ToBusinessResponse(business), nil
}

// GetByID obtiene un negocio por ID. (nil, nil) si no existe.
func (uc *BusinessUseCase) GetByID(ctx context.Context, id string) (*dto.BusinessResponse, error) {
	business, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToBusinessResponse(business), nil
}

// ListForUser lista los negocios a los que el usuario pertenece: los que creó
// más los que tiene por asignación de rol, sin duplicados.
func (uc *BusinessUseCase) ListForUser(ctx context.Context, userID string) (*dto.BusinessListResponse, error) {
	owned, err := uc.repo.ListCreatedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(owned))
	items := make([]dto.BusinessResponse, 0, len(owned))
	for _, b := range owned {
		seen[b.ID] = true
		items = append(items, *ToBusinessResponse(b))
	}
	assignments, err := uc.roleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		if seen[a.BusinessID] {
			continue
		}
		b, err := uc.repo.GetByID(ctx, a.BusinessID)
		if err != nil {
			return nil, err
		}
		if b != nil {
			seen[b.ID] = true
			items = append(items, *ToBusinessResponse(b))
		}
	}
	return &dto.BusinessListResponse{Items: items}, nil
}

// Update actualiza los campos editables de un negocio. Solo el dueño puede.
func (uc *BusinessUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	business, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	if !business.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		business.Name = *in.Name
	}
	if in.Address != nil {
		business.Address = *in.Address
	}
	if in.Phone != nil {
		business.Phone = *in.Phone
	}
	if in.Email != nil {
		business.Email = *in.Email
	}
	business.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, business); err != nil {
		return nil, err
	}
	return ToBusinessResponse(business), nil
}

// ToBusinessResponse mapea la entidad a su DTO.
func ToBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		Email:     b.Email,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
