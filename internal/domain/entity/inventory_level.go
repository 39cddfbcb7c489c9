package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLevel representa el conteo actual de un producto en el negocio.
// Un restaurante es una sola ubicación: no hay bodegas.
type InventoryLevel struct {
	BusinessID string
	ProductID  string
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}
