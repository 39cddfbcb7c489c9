package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de lectura para el overview y la sección de analítica.
type AnalyticsRepo struct {
	db DB
}

// NewAnalyticsRepository construye el adaptador de lecturas agregadas.
func NewAnalyticsRepository(db DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// GetOverviewMetrics devuelve los contadores del negocio en una sola consulta.
// COALESCE entrega ceros para negocios recién creados sin datos.
func (r *AnalyticsRepo) GetOverviewMetrics(ctx context.Context, businessID string) (*repository.OverviewMetrics, error) {
	query := `
		SELECT
			COALESCE((SELECT COUNT(*) FROM products p WHERE p.business_id = $1), 0)  AS product_count,
			COALESCE((SELECT COUNT(*) FROM vendors v WHERE v.business_id = $1), 0)   AS vendor_count,
			COALESCE((SELECT COUNT(*) FROM user_business_roles r WHERE r.business_id = $1), 0) + 1 AS member_count,
			COALESCE((SELECT COUNT(*) FROM invitations i WHERE i.business_id = $1 AND i.status = 'pending'), 0) AS pending_invitations,
			COALESCE((
				SELECT SUM(il.quantity * pu.unit_price)
				FROM inventory_levels il
				JOIN products p ON p.id = il.product_id
				JOIN LATERAL (
					SELECT MIN(ROUND(pp.pack_price / pp.units_per_pack, 2)) AS unit_price
					FROM product_packaging pp
					WHERE pp.product_id = p.id AND pp.units_per_pack > 0
				) pu ON pu.unit_price IS NOT NULL
				WHERE il.business_id = $1
			), 0) AS inventory_value`

	var m repository.OverviewMetrics
	err := r.db.QueryRow(ctx, query, businessID).Scan(
		&m.ProductCount, &m.VendorCount, &m.MemberCount, &m.PendingInvitations, &m.InventoryValue,
	)
	if err != nil {
		return nil, fmt.Errorf("get overview metrics: %w", err)
	}
	return &m, nil
}

// GetInventoryValueByCategory agrupa el valor del inventario por categoría.
// La valoración usa el precio unitario mínimo entre las presentaciones del
// producto, igual que el overview.
func (r *AnalyticsRepo) GetInventoryValueByCategory(ctx context.Context, businessID string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT p.category, COALESCE(SUM(il.quantity * pu.unit_price), 0) AS value
		FROM inventory_levels il
		JOIN products p ON p.id = il.product_id
		JOIN LATERAL (
			SELECT MIN(ROUND(pp.pack_price / pp.units_per_pack, 2)) AS unit_price
			FROM product_packaging pp
			WHERE pp.product_id = p.id AND pp.units_per_pack > 0
		) pu ON pu.unit_price IS NOT NULL
		WHERE il.business_id = $1
		GROUP BY p.category`

	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("inventory value by category: %w", err)
	}
	defer rows.Close()

	values := make(map[string]decimal.Decimal)
	for rows.Next() {
		var category string
		var value decimal.Decimal
		if err := rows.Scan(&category, &value); err != nil {
			return nil, fmt.Errorf("scan category value: %w", err)
		}
		values[category] = value
	}
	return values, rows.Err()
}
