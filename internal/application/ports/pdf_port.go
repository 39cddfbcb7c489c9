package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

// OrderSheetLine una línea de la hoja de pedido: producto con su presentación
// preferida y el conteo actual en inventario.
type OrderSheetLine struct {
	ProductName   string
	Category      string
	PackagingName string
	UnitsPerPack  int
	PackPrice     decimal.Decimal
	UnitPrice     decimal.Decimal
	CurrentStock  decimal.Decimal
}

// OrderSheetGenerator define el puerto para generar la hoja de pedido a un
// proveedor (PDF imprimible de la sección ordering).
type OrderSheetGenerator interface {
	GenerateOrderSheet(
		ctx context.Context,
		business *entity.Business,
		vendor *entity.Vendor,
		lines []OrderSheetLine,
	) ([]byte, error)
}
