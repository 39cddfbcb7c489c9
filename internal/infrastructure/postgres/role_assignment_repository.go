package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

var _ repository.RoleAssignmentRepository = (*RoleAssignmentRepo)(nil)

// RoleAssignmentRepo implementación del puerto sobre la tabla user_business_roles.
type RoleAssignmentRepo struct {
	db DB
}

// NewRoleAssignmentRepository construye el adaptador de persistencia.
func NewRoleAssignmentRepository(db DB) *RoleAssignmentRepo {
	return &RoleAssignmentRepo{db: db}
}

const roleColumns = `id, user_id, business_id, role, created_at, updated_at`

// Upsert inserta o actualiza la asignación por (user_id, business_id).
func (r *RoleAssignmentRepo) Upsert(ctx context.Context, a *entity.RoleAssignment) error {
	query := `
		INSERT INTO user_business_roles (` + roleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, business_id)
		DO UPDATE SET role = EXCLUDED.role, updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, a.ID, a.UserID, a.BusinessID, a.Role, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert role assignment: %w", err)
	}
	return nil
}

// GetByUserAndBusiness devuelve (nil, nil) si no hay asignación.
func (r *RoleAssignmentRepo) GetByUserAndBusiness(ctx context.Context, userID, businessID string) (*entity.RoleAssignment, error) {
	var a entity.RoleAssignment
	err := r.db.QueryRow(ctx,
		`SELECT `+roleColumns+` FROM user_business_roles WHERE user_id = $1 AND business_id = $2`,
		userID, businessID,
	).Scan(&a.ID, &a.UserID, &a.BusinessID, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role assignment: %w", err)
	}
	return &a, nil
}

// ListByUser lista las asignaciones del usuario, created_at ascendente
// (determinismo del paso 3 del resolver de negocio).
func (r *RoleAssignmentRepo) ListByUser(ctx context.Context, userID string) ([]*entity.RoleAssignment, error) {
	return r.list(ctx,
		`SELECT `+roleColumns+` FROM user_business_roles WHERE user_id = $1 ORDER BY created_at ASC`,
		userID)
}

// ListByBusiness lista las asignaciones del negocio.
func (r *RoleAssignmentRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.RoleAssignment, error) {
	return r.list(ctx,
		`SELECT `+roleColumns+` FROM user_business_roles WHERE business_id = $1 ORDER BY created_at ASC`,
		businessID)
}

func (r *RoleAssignmentRepo) list(ctx context.Context, query string, arg any) ([]*entity.RoleAssignment, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list role assignments: %w", err)
	}
	defer rows.Close()
	var list []*entity.RoleAssignment
	for rows.Next() {
		var a entity.RoleAssignment
		if err := rows.Scan(&a.ID, &a.UserID, &a.BusinessID, &a.Role, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role assignment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina la asignación de un usuario en un negocio.
func (r *RoleAssignmentRepo) Delete(ctx context.Context, userID, businessID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM user_business_roles WHERE user_id = $1 AND business_id = $2`, userID, businessID)
	if err != nil {
		return fmt.Errorf("delete role assignment: %w", err)
	}
	return nil
}
