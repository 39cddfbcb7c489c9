package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrNoRole indica que el usuario no creó el negocio ni tiene asignación de rol.
	// Reemplaza el antiguo fallback silencioso a admin, que era un bug.
	ErrNoRole = errors.New("el usuario no tiene rol en este negocio")
)

// Errores del ciclo de aceptación de invitaciones. Cada causa de rechazo tiene su
// propio error para que el cliente pueda mostrar un mensaje específico; nunca se
// colapsa en un fallo genérico.
var (
	ErrInvitationNotFound      = errors.New("invitación no válida")
	ErrInvitationNotPending    = errors.New("la invitación ya no está pendiente")
	ErrInvitationExpired       = errors.New("la invitación ha expirado")
	ErrInvitationEmailMismatch = errors.New("el email no coincide con la invitación")
	ErrInvalidInvitationToken  = errors.New("token de invitación con formato inválido")
)
