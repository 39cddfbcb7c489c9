package dto

import "time"

// CreateVendorRequest entrada para crear un proveedor.
// DeliveryDays es "mon,wed,fri"; se valida con el parser del dominio.
type CreateVendorRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	ContactName  string `json:"contact_name" validate:"omitempty,max=200"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,max=50"`
	DeliveryDays string `json:"delivery_days" validate:"omitempty,max=50"`
}

// UpdateVendorRequest entrada parcial para actualizar un proveedor.
type UpdateVendorRequest struct {
	Name         *string `json:"name"`
	ContactName  *string `json:"contact_name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	DeliveryDays *string `json:"delivery_days"`
}

// VendorResponse salida de un proveedor.
type VendorResponse struct {
	ID           string    `json:"id"`
	BusinessID   string    `json:"business_id"`
	Name         string    `json:"name"`
	ContactName  string    `json:"contact_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	DeliveryDays string    `json:"delivery_days"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VendorListResponse listado paginado de proveedores.
type VendorListResponse struct {
	Items []VendorResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
