package usecase

import (
	"context"
	"time"

	"github.com/skyllex94/orderexpress-api/internal/application/dto"
	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

// InventoryUseCase conteos de inventario por producto (una sola ubicación).
type InventoryUseCase struct {
	levelRepo   repository.InventoryLevelRepository
	productRepo repository.ProductRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(levelRepo repository.InventoryLevelRepository, productRepo repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{levelRepo: levelRepo, productRepo: productRepo}
}

// SetLevel fija el conteo actual de un producto (upsert). La cantidad no puede
// ser negativa; los conteos son absolutos, no movimientos.
func (uc *InventoryUseCase) SetLevel(ctx context.Context, businessID string, in dto.SetInventoryLevelRequest) (*dto.InventoryLevelResponse, error) {
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	level := &entity.InventoryLevel{
		BusinessID: businessID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		UpdatedAt:  time.Now(),
	}
	if err := uc.levelRepo.Upsert(ctx, level); err != nil {
		return nil, err
	}
	return &dto.InventoryLevelResponse{
		ProductID:   level.ProductID,
		ProductName: product.Name,
		Quantity:    level.Quantity,
		UpdatedAt:   level.UpdatedAt,
	}, nil
}

// List devuelve todos los conteos del negocio con el nombre del producto.
func (uc *InventoryUseCase) List(ctx context.Context, businessID string) (*dto.InventoryListResponse, error) {
	levels, err := uc.levelRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryLevelResponse, 0, len(levels))
	for _, l := range levels {
		name := ""
		if product, err := uc.productRepo.GetByID(ctx, l.ProductID); err == nil && product != nil {
			name = product.Name
		}
		items = append(items, dto.InventoryLevelResponse{
			ProductID:   l.ProductID,
			ProductName: name,
			Quantity:    l.Quantity,
			UpdatedAt:   l.UpdatedAt,
		})
	}
	return &dto.InventoryListResponse{Items: items}, nil
}
