package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetInventoryLevelRequest fija el conteo actual de un producto.
type SetInventoryLevelRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// InventoryLevelResponse conteo de un producto.
type InventoryLevelResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// InventoryListResponse todos los conteos del negocio.
type InventoryListResponse struct {
	Items []InventoryLevelResponse `json:"items"`
}
