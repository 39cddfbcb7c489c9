package entity

import "time"

// Business representa un negocio/tenant (restaurante o bar) del sistema.
// CreatedBy es el dueño; la propiedad es permanente y no se transfiere.
type Business struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	CreatedBy string // UserID del creador
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy informa si el usuario creó este negocio (⇒ rol admin incondicional).
func (b *Business) IsOwnedBy(userID string) bool {
	return b.CreatedBy != "" && b.CreatedBy == userID
}
