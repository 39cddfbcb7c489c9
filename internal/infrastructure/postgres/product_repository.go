package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository   = (*ProductRepo)(nil)
	_ repository.PackagingRepository = (*PackagingRepo)(nil)
)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, business_id, vendor_id, name, category, status, created_at, updated_at`

// vendor_id es NULLable en la tabla; en la entidad se modela como cadena vacía.
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		product.ID, product.BusinessID, nullableID(product.VendorID),
		product.Name, product.Category, product.Status, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id), "get product by id")
}

// GetByBusinessAndName busca por nombre exacto dentro del negocio (unicidad).
func (r *ProductRepo) GetByBusinessAndName(ctx context.Context, businessID, name string) (*entity.Product, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE business_id = $1 AND name = $2 LIMIT 1`,
		businessID, name), "get product by name")
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	var vendorID *string
	err := row.Scan(&p.ID, &p.BusinessID, &vendorID, &p.Name, &p.Category, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if vendorID != nil {
		p.VendorID = *vendorID
	}
	return &p, nil
}

// ListByBusiness lista los productos del negocio paginados, por nombre ascendente.
func (r *ProductRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Product, error) {
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products WHERE business_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`,
		businessID, limit, offset)
}

// ListByVendor lista los productos del negocio asignados a un proveedor.
func (r *ProductRepo) ListByVendor(ctx context.Context, businessID, vendorID string) ([]*entity.Product, error) {
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products WHERE business_id = $1 AND vendor_id = $2 ORDER BY name ASC`,
		businessID, vendorID)
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var vendorID *string
		if err := rows.Scan(&p.ID, &p.BusinessID, &vendorID, &p.Name, &p.Category, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if vendorID != nil {
			p.VendorID = *vendorID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET vendor_id = $2, name = $3, category = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		product.ID, nullableID(product.VendorID), product.Name, product.Category, product.Status, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// PackagingRepo implementación del puerto PackagingRepository sobre PostgreSQL.
type PackagingRepo struct {
	db DB
}

// NewPackagingRepository construye el adaptador para presentaciones de compra.
func NewPackagingRepository(db DB) *PackagingRepo {
	return &PackagingRepo{db: db}
}

const packagingColumns = `id, product_id, name, units_per_pack, pack_price, created_at, updated_at`

// Create persiste una nueva presentación.
func (r *PackagingRepo) Create(ctx context.Context, pkg *entity.Packaging) error {
	query := `
		INSERT INTO product_packaging (` + packagingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		pkg.ID, pkg.ProductID, pkg.Name, pkg.UnitsPerPack, pkg.PackPrice, pkg.CreatedAt, pkg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert packaging: %w", err)
	}
	return nil
}

// GetByID obtiene una presentación por ID. (nil, nil) si no existe.
func (r *PackagingRepo) GetByID(ctx context.Context, id string) (*entity.Packaging, error) {
	var p entity.Packaging
	err := r.db.QueryRow(ctx,
		`SELECT `+packagingColumns+` FROM product_packaging WHERE id = $1`, id,
	).Scan(&p.ID, &p.ProductID, &p.Name, &p.UnitsPerPack, &p.PackPrice, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get packaging by id: %w", err)
	}
	return &p, nil
}

// ListByProduct lista las presentaciones de un producto, más antiguas primero.
func (r *PackagingRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Packaging, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+packagingColumns+` FROM product_packaging WHERE product_id = $1 ORDER BY created_at ASC`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("list packaging: %w", err)
	}
	defer rows.Close()
	var list []*entity.Packaging
	for rows.Next() {
		var p entity.Packaging
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Name, &p.UnitsPerPack, &p.PackPrice, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan packaging: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza una presentación.
func (r *PackagingRepo) Update(ctx context.Context, pkg *entity.Packaging) error {
	query := `
		UPDATE product_packaging SET name = $2, units_per_pack = $3, pack_price = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, pkg.ID, pkg.Name, pkg.UnitsPerPack, pkg.PackPrice, pkg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update packaging: %w", err)
	}
	return nil
}

// Delete elimina una presentación por ID.
func (r *PackagingRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM product_packaging WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete packaging: %w", err)
	}
	return nil
}
