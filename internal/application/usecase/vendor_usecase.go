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

// VendorUseCase casos de uso CRUD para proveedores.
type VendorUseCase struct {
	repo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

// Create crea un proveedor. DeliveryDays se valida con el parser del dominio
// antes de persistir; así los lectores pueden confiar en el formato.
func (uc *VendorUseCase) Create(ctx context.Context, businessID string, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if _, err := entity.ParseDeliveryDays(in.DeliveryDays); err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	vendor := &entity.Vendor{
		ID:           uuid.New().String(),
		BusinessID:   businessID,
		Name:         in.Name,
		ContactName:  in.ContactName,
		Email:        in.Email,
		Phone:        in.Phone,
		DeliveryDays: in.DeliveryDays,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// GetByID obtiene un proveedor. (nil, nil) si no existe o es de otro negocio.
func (uc *VendorUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil || vendor.BusinessID != businessID {
		return nil, nil
	}
	return toVendorResponse(vendor), nil
}

// List lista proveedores del negocio con paginación.
func (uc *VendorUseCase) List(ctx context.Context, businessID string, limit, offset int) (*dto.VendorListResponse, error) {
	list, err := uc.repo.ListByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendorResponse(v))
	}
	return &dto.VendorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un proveedor. (nil, nil) si no existe.
func (uc *VendorUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil || vendor.BusinessID != businessID {
		return nil, nil
	}
	if in.Name != nil {
		vendor.Name = *in.Name
	}
	if in.ContactName != nil {
		vendor.ContactName = *in.ContactName
	}
	if in.Email != nil {
		vendor.Email = *in.Email
	}
	if in.Phone != nil {
		vendor.Phone = *in.Phone
	}
	if in.DeliveryDays != nil {
		if _, err := entity.ParseDeliveryDays(*in.DeliveryDays); err != nil {
			return nil, domain.ErrInvalidInput
		}
		vendor.DeliveryDays = *in.DeliveryDays
	}
	vendor.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// Delete elimina un proveedor del negocio.
func (uc *VendorUseCase) Delete(ctx context.Context, businessID, id string) error {
	vendor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil || vendor.BusinessID != businessID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:           v.ID,
		BusinessID:   v.BusinessID,
		Name:         v.Name,
		ContactName:  v.ContactName,
		Email:        v.Email,
		Phone:        v.Phone,
		DeliveryDays: v.DeliveryDays,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
