package repository

import (
	"context"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

// InventoryLevelRepository define el puerto para los conteos de inventario.
type InventoryLevelRepository interface {
	Get(ctx context.Context, businessID, productID string) (*entity.InventoryLevel, error)
	Upsert(ctx context.Context, level *entity.InventoryLevel) error
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.InventoryLevel, error)
	Delete(ctx context.Context, businessID, productID string) error
}
