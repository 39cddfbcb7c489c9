package repository

import (
	"context"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

// RoleAssignmentRepository define el puerto para la tabla user_business_roles.
type RoleAssignmentRepository interface {
	// Upsert inserta o actualiza la asignación por (user_id, business_id).
	Upsert(ctx context.Context, assignment *entity.RoleAssignment) error

	// GetByUserAndBusiness devuelve (nil, nil) si el usuario no tiene rol en el negocio.
	GetByUserAndBusiness(ctx context.Context, userID, businessID string) (*entity.RoleAssignment, error)

	// ListByUser devuelve las asignaciones del usuario ordenadas por created_at
	// ascendente, para que el paso 3 del resolver sea determinista.
	ListByUser(ctx context.Context, userID string) ([]*entity.RoleAssignment, error)

	ListByBusiness(ctx context.Context, businessID string) ([]*entity.RoleAssignment, error)
	Delete(ctx context.Context, userID, businessID string) error
}
