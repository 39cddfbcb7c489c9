package repository

import (
	"context"
	"time"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

// InvitationRepository define el puerto de persistencia para invitaciones.
type InvitationRepository interface {
	Create(ctx context.Context, inv *entity.Invitation) error
	GetByID(ctx context.Context, id string) (*entity.Invitation, error)
	GetByToken(ctx context.Context, token string) (*entity.Invitation, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.Invitation, error)

	// MarkAccepted transiciona pending → accepted con su timestamp. Solo afecta
	// filas en pending; devuelve domain.ErrInvitationNotPending si ya no lo está.
	MarkAccepted(ctx context.Context, id string, acceptedAt time.Time) error

	// Delete elimina la invitación (cancelación: hard delete, sin estado intermedio).
	Delete(ctx context.Context, id string) error
}
