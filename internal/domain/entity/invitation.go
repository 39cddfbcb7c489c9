package entity

import (
	"time"

	"github.com/google/uuid"
)

// Estados de una invitación. La cancelación es un DELETE, no un estado.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
)

// Invitation representa una oferta pendiente de rol en un negocio, canjeable una
// sola vez mediante token. Un token consumido o expirado no vuelve a dar acceso.
type Invitation struct {
	ID         string
	BusinessID string
	Email      string
	Role       string
	Token      string     // opaco para el cliente; con forma UUID en el servidor
	Status     string     // pending, accepted
	ExpiresAt  *time.Time // nil = nunca expira
	InvitedBy  string     // UserID del que invita
	AcceptedAt *time.Time
	CreatedAt  time.Time
}

// IsExpired evalúa la expiración contra el instante dado (no contra la creación).
func (i *Invitation) IsExpired(now time.Time) bool {
	return i.ExpiresAt != nil && now.After(*i.ExpiresAt)
}

// ValidInvitationToken valida la forma del token antes de usarlo en un lookup.
// Los tokens se generan como UUID; cualquier otra cosa se rechaza de entrada.
func ValidInvitationToken(token string) bool {
	_, err := uuid.Parse(token)
	return err == nil
}
