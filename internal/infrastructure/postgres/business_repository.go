package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL.
type BusinessRepo struct {
	db DB
}

// NewBusinessRepository construye el adaptador de persistencia para negocios.
func NewBusinessRepository(db DB) *BusinessRepo {
	return &BusinessRepo{db: db}
}

const businessColumns = `id, name, address, phone, email, created_by, created_at, updated_at`

// Create persiste un nuevo negocio.
func (r *BusinessRepo) Create(ctx context.Context, business *entity.Business) error {
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		business.ID, business.Name, business.Address, business.Phone, business.Email,
		business.CreatedBy, business.CreatedAt, business.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID. (nil, nil) si no existe.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	var b entity.Business
	err := r.db.QueryRow(ctx,
		`SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.Address, &b.Phone, &b.Email, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business by id: %w", err)
	}
	return &b, nil
}

// ListCreatedBy lista los negocios creados por el usuario, created_at ascendente.
// El orden es contrato: el resolver toma el primero como negocio por defecto.
func (r *BusinessRepo) ListCreatedBy(ctx context.Context, userID string) ([]*entity.Business, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+businessColumns+` FROM businesses WHERE created_by = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list businesses by creator: %w", err)
	}
	defer rows.Close()
	var list []*entity.Business
	for rows.Next() {
		var b entity.Business
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.Phone, &b.Email, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza un negocio.
func (r *BusinessRepo) Update(ctx context.Context, business *entity.Business) error {
	query := `
		UPDATE businesses SET name = $2, address = $3, phone = $4, email = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		business.ID, business.Name, business.Address, business.Phone, business.Email, business.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	return nil
}

// Delete elimina un negocio por ID.
func (r *BusinessRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	return nil
}
