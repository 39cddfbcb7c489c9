package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto del back-office (bebida y comida).
const (
	CategoryWine    = "wine"
	CategoryBeer    = "beer"
	CategorySpirits = "spirits"
	CategoryNABev   = "non_alcoholic"
	CategoryFood    = "food"
)

// ValidCategory informa si la categoría es una de las conocidas.
func ValidCategory(c string) bool {
	switch c {
	case CategoryWine, CategoryBeer, CategorySpirits, CategoryNABev, CategoryFood:
		return true
	}
	return false
}

// Product representa un producto del negocio (bebida o comida). El precio de
// compra vive en sus presentaciones (Packaging); el conteo en InventoryLevel.
type Product struct {
	ID         string
	BusinessID string
	VendorID   string // vacío si aún no tiene proveedor asignado
	Name       string
	Category   string
	Status     string // active, inactive
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Packaging representa una presentación de compra de un producto
// (ej. "Caja 24 botellas 330ml" a $480). El precio por unidad es derivado.
type Packaging struct {
	ID           string
	ProductID    string
	Name         string
	UnitsPerPack int
	PackPrice    decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UnitPrice devuelve el precio por unidad individual (pack_price / units, 2 decimales).
// Es la etiqueta "per item" que muestra la tabla de productos del dashboard.
func (p *Packaging) UnitPrice() decimal.Decimal {
	if p.UnitsPerPack <= 0 {
		return decimal.Zero
	}
	return p.PackPrice.Div(decimal.NewFromInt(int64(p.UnitsPerPack))).Round(2)
}
