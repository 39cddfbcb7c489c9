package entity

import "time"

// User representa una cuenta del sistema. La pertenencia a negocios no vive aquí:
// se modela con RoleAssignment (un usuario puede estar en varios negocios).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName devuelve el nombre para mostrar; cae al email si no hay nombre.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Email
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
