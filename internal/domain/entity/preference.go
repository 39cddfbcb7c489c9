package entity

import "time"

// UserPreference reemplaza el cache local del navegador por un store explícito:
// el negocio seleccionado en la sesión anterior y el estado del sidebar.
// Ambos campos son best-effort; el resolver tolera que falten o apunten a un
// negocio ya eliminado.
type UserPreference struct {
	UserID            string
	CurrentBusinessID string // vacío = sin selección persistida
	SidebarCollapsed  bool
	UpdatedAt         time.Time
}
