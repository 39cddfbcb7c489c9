package entity

import "time"

// Roles válidos dentro de un negocio (tabla user_business_roles).
const (
	RoleAdmin            = "admin"
	RoleInventoryManager = "inventory_manager"
	RoleOrderingManager  = "ordering_manager"
	RoleSalesManager     = "sales_manager"
)

// ValidRole informa si el string es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleInventoryManager, RoleOrderingManager, RoleSalesManager:
		return true
	}
	return false
}

// RoleAssignment representa el rol de un usuario dentro de un negocio.
// Única por (UserID, BusinessID). Se crea al aceptar una invitación o por
// cambio de rol; se elimina al quitar al usuario del negocio.
type RoleAssignment struct {
	ID         string
	UserID     string
	BusinessID string
	Role       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
