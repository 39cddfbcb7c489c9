package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

var _ repository.InventoryLevelRepository = (*InventoryLevelRepo)(nil)

// InventoryLevelRepo implementación del puerto sobre la tabla inventory_levels.
type InventoryLevelRepo struct {
	db DB
}

// NewInventoryLevelRepository construye el adaptador de persistencia de conteos.
func NewInventoryLevelRepository(db DB) *InventoryLevelRepo {
	return &InventoryLevelRepo{db: db}
}

const levelColumns = `business_id, product_id, quantity, updated_at`

// Get devuelve el conteo de un producto. (nil, nil) si nunca se contó.
func (r *InventoryLevelRepo) Get(ctx context.Context, businessID, productID string) (*entity.InventoryLevel, error) {
	var l entity.InventoryLevel
	err := r.db.QueryRow(ctx,
		`SELECT `+levelColumns+` FROM inventory_levels WHERE business_id = $1 AND product_id = $2`,
		businessID, productID,
	).Scan(&l.BusinessID, &l.ProductID, &l.Quantity, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory level: %w", err)
	}
	return &l, nil
}

// Upsert inserta o reemplaza el conteo por (business_id, product_id).
func (r *InventoryLevelRepo) Upsert(ctx context.Context, level *entity.InventoryLevel) error {
	query := `
		INSERT INTO inventory_levels (` + levelColumns + `)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (business_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, level.BusinessID, level.ProductID, level.Quantity, level.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert inventory level: %w", err)
	}
	return nil
}

// ListByBusiness lista los conteos del negocio.
func (r *InventoryLevelRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.InventoryLevel, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+levelColumns+` FROM inventory_levels WHERE business_id = $1 ORDER BY updated_at DESC`,
		businessID)
	if err != nil {
		return nil, fmt.Errorf("list inventory levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLevel
	for rows.Next() {
		var l entity.InventoryLevel
		if err := rows.Scan(&l.BusinessID, &l.ProductID, &l.Quantity, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory level: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina el conteo de un producto.
func (r *InventoryLevelRepo) Delete(ctx context.Context, businessID, productID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM inventory_levels WHERE business_id = $1 AND product_id = $2`, businessID, productID)
	if err != nil {
		return fmt.Errorf("delete inventory level: %w", err)
	}
	return nil
}
