package repository

import (
	"context"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para Business (DIP).
// La implementación vive en infrastructure.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)

	// ListCreatedBy devuelve los negocios creados por el usuario, ordenados por
	// created_at ascendente: el resolver toma el más antiguo como fallback.
	ListCreatedBy(ctx context.Context, userID string) ([]*entity.Business, error)

	Update(ctx context.Context, business *entity.Business) error
	Delete(ctx context.Context, id string) error
}
