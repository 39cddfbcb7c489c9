package repository

import (
	"context"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

// PreferenceRepository es el store explícito de preferencias de usuario que
// sustituye al cache local del navegador: get/set/clear, sin estado ambiente.
// Get devuelve (nil, nil) si el usuario nunca guardó preferencias.
type PreferenceRepository interface {
	Get(ctx context.Context, userID string) (*entity.UserPreference, error)
	SetCurrentBusiness(ctx context.Context, userID, businessID string) error
	ClearCurrentBusiness(ctx context.Context, userID string) error
	SetSidebarCollapsed(ctx context.Context, userID string, collapsed bool) error
}
