package repository

import (
	"context"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByBusinessAndName(ctx context.Context, businessID, name string) (*entity.Product, error)
	ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Product, error)
	ListByVendor(ctx context.Context, businessID, vendorID string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}

// PackagingRepository define el puerto para las presentaciones de compra.
type PackagingRepository interface {
	Create(ctx context.Context, pkg *entity.Packaging) error
	GetByID(ctx context.Context, id string) (*entity.Packaging, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Packaging, error)
	Update(ctx context.Context, pkg *entity.Packaging) error
	Delete(ctx context.Context, id string) error
}
