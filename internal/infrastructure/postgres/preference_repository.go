package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

// PreferenceRepo persiste preferencias de usuario en la tabla user_preferences.
// Cada escritura es un upsert: la fila se crea la primera vez que el usuario
// guarda algo.
type PreferenceRepo struct {
	db DB
}

// NewPreferenceRepository construye el adaptador de preferencias.
func NewPreferenceRepository(db DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// Get devuelve las preferencias del usuario. (nil, nil) si nunca guardó nada.
func (r *PreferenceRepo) Get(ctx context.Context, userID string) (*entity.UserPreference, error) {
	var p entity.UserPreference
	var businessID *string
	err := r.db.QueryRow(ctx,
		`SELECT user_id, current_business_id, sidebar_collapsed, updated_at
		 FROM user_preferences WHERE user_id = $1`, userID,
	).Scan(&p.UserID, &businessID, &p.SidebarCollapsed, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	if businessID != nil {
		p.CurrentBusinessID = *businessID
	}
	return &p, nil
}

// SetCurrentBusiness recuerda el negocio activo del usuario.
func (r *PreferenceRepo) SetCurrentBusiness(ctx context.Context, userID, businessID string) error {
	query := `
		INSERT INTO user_preferences (user_id, current_business_id, sidebar_collapsed, updated_at)
		VALUES ($1, $2, false, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET current_business_id = EXCLUDED.current_business_id, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.Exec(ctx, query, userID, businessID, time.Now().UTC()); err != nil {
		return fmt.Errorf("set current business: %w", err)
	}
	return nil
}

// ClearCurrentBusiness borra la selección persistida (negocio eliminado o
// membresía revocada) sin tocar el resto de preferencias.
func (r *PreferenceRepo) ClearCurrentBusiness(ctx context.Context, userID string) error {
	query := `
		UPDATE user_preferences SET current_business_id = NULL, updated_at = $2
		WHERE user_id = $1`
	if _, err := r.db.Exec(ctx, query, userID, time.Now().UTC()); err != nil {
		return fmt.Errorf("clear current business: %w", err)
	}
	return nil
}

// SetSidebarCollapsed recuerda el estado del sidebar.
func (r *PreferenceRepo) SetSidebarCollapsed(ctx context.Context, userID string, collapsed bool) error {
	query := `
		INSERT INTO user_preferences (user_id, current_business_id, sidebar_collapsed, updated_at)
		VALUES ($1, NULL, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET sidebar_collapsed = EXCLUDED.sidebar_collapsed, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.Exec(ctx, query, userID, collapsed, time.Now().UTC()); err != nil {
		return fmt.Errorf("set sidebar collapsed: %w", err)
	}
	return nil
}
