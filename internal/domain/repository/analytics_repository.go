package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// OverviewMetrics resultado crudo de las consultas de resumen del dashboard.
// Lo produce la DB; el use case lo convierte en DTO.
type OverviewMetrics struct {
	ProductCount       int
	VendorCount        int
	MemberCount        int // asignaciones de rol + el dueño
	PendingInvitations int
	InventoryValue     decimal.Decimal // Σ cantidad × precio unitario mínimo del producto
}

// AnalyticsRepository define las consultas de lectura para el overview y la
// sección de analítica. Las implementaciones son read-only.
type AnalyticsRepository interface {
	// GetOverviewMetrics devuelve los contadores del negocio usando COALESCE
	// para entregar ceros cuando no hay datos.
	GetOverviewMetrics(ctx context.Context, businessID string) (*OverviewMetrics, error)

	// GetInventoryValueByCategory devuelve el valor del inventario agrupado por
	// categoría de producto, ordenado por valor descendente.
	GetInventoryValueByCategory(ctx context.Context, businessID string) (map[string]decimal.Decimal, error)
}
