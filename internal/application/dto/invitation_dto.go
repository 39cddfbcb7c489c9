package dto

import "time"

// CreateInvitationRequest entrada para invitar a un email con un rol.
// ExpiresInDays opcional: 0 = la invitación nunca expira.
type CreateInvitationRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Role          string `json:"role" validate:"required,oneof=admin inventory_manager ordering_manager sales_manager"`
	ExpiresInDays int    `json:"expires_in_days" validate:"omitempty,min=1,max=90"`
}

// InvitationResponse salida de una invitación. El token solo se expone al
// crearla (va en el link del email); en listados viaja vacío.
type InvitationResponse struct {
	ID         string     `json:"id"`
	BusinessID string     `json:"business_id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	InvitedBy  string     `json:"invited_by"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// InvitationListResponse listado de invitaciones del negocio.
type InvitationListResponse struct {
	Items []InvitationResponse `json:"items"`
}

// ValidateInvitationResponse lo que ve la pantalla pública de aceptación antes
// de pedir credenciales: a qué negocio y con qué rol se está invitando.
type ValidateInvitationResponse struct {
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

// AcceptInvitationRequest entrada del flujo de aceptación (función privilegiada).
type AcceptInvitationRequest struct {
	Token     string `json:"token" validate:"required,uuid"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
}

// AcceptInvitationResponse salida de la aceptación.
type AcceptInvitationResponse struct {
	UserID     string `json:"user_id"`
	BusinessID string `json:"business_id"`
	Role       string `json:"role"`
	// UserExisted true si la cuenta ya existía y solo se añadió el rol.
	UserExisted bool `json:"user_existed"`
}
