package dto

import "time"

// CreateBusinessRequest entrada para crear un negocio.
type CreateBusinessRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"omitempty,max=300"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// UpdateBusinessRequest entrada parcial para actualizar un negocio.
type UpdateBusinessRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

// BusinessResponse salida de un negocio.
type BusinessResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BusinessListResponse listado de negocios del usuario.
type BusinessListResponse struct {
	Items []BusinessResponse `json:"items"`
}
