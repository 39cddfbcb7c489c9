package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Category string `json:"category" validate:"required,oneof=wine beer spirits non_alcoholic food"`
	VendorID string `json:"vendor_id" validate:"omitempty,uuid"`
}

// UpdateProductRequest entrada parcial para actualizar un producto.
type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	VendorID *string `json:"vendor_id"`
	Status   *string `json:"status"`
}

// ProductResponse salida de un producto con sus presentaciones.
type ProductResponse struct {
	ID         string              `json:"id"`
	BusinessID string              `json:"business_id"`
	VendorID   string              `json:"vendor_id,omitempty"`
	Name       string              `json:"name"`
	Category   string              `json:"category"`
	Status     string              `json:"status"`
	Packaging  []PackagingResponse `json:"packaging,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreatePackagingRequest entrada para añadir una presentación de compra.
type CreatePackagingRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	UnitsPerPack int             `json:"units_per_pack" validate:"required,min=1"`
	PackPrice    decimal.Decimal `json:"pack_price" validate:"required"`
}

// PackagingResponse salida de una presentación, con el precio unitario derivado.
type PackagingResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	UnitsPerPack int             `json:"units_per_pack"`
	PackPrice    decimal.Decimal `json:"pack_price"`
	UnitPrice    decimal.Decimal `json:"unit_price"` // pack_price / units_per_pack, 2 decimales
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
