package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	db DB
}

// NewVendorRepository construye el adaptador de persistencia para proveedores.
func NewVendorRepository(db DB) *VendorRepo {
	return &VendorRepo{db: db}
}

const vendorColumns = `id, business_id, name, contact_name, email, phone, delivery_days, created_at, updated_at`

// Create persiste un nuevo proveedor.
func (r *VendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		vendor.ID, vendor.BusinessID, vendor.Name, vendor.ContactName, vendor.Email,
		vendor.Phone, vendor.DeliveryDays, vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. (nil, nil) si no existe.
func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.db.QueryRow(ctx,
		`SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id,
	).Scan(&v.ID, &v.BusinessID, &v.Name, &v.ContactName, &v.Email, &v.Phone, &v.DeliveryDays, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor by id: %w", err)
	}
	return &v, nil
}

// ListByBusiness lista los proveedores del negocio paginados, por nombre ascendente.
func (r *VendorRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Vendor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+vendorColumns+` FROM vendors WHERE business_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`,
		businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.BusinessID, &v.Name, &v.ContactName, &v.Email, &v.Phone, &v.DeliveryDays, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor.
func (r *VendorRepo) Update(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		UPDATE vendors SET name = $2, contact_name = $3, email = $4, phone = $5, delivery_days = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		vendor.ID, vendor.Name, vendor.ContactName, vendor.Email, vendor.Phone, vendor.DeliveryDays, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *VendorRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}
