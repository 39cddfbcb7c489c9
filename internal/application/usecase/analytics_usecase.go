package usecase

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/skyllex94/orderexpress-api/internal/application/dto"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

// AnalyticsUseCase métricas de lectura para las secciones overview y analytics.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// Overview devuelve los contadores de la portada del dashboard.
func (uc *AnalyticsUseCase) Overview(ctx context.Context, businessID string) (*dto.OverviewResponse, error) {
	m, err := uc.repo.GetOverviewMetrics(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return &dto.OverviewResponse{
		ProductCount:       m.ProductCount,
		VendorCount:        m.VendorCount,
		MemberCount:        m.MemberCount,
		PendingInvitations: m.PendingInvitations,
		InventoryValue:     m.InventoryValue,
	}, nil
}

// Analytics devuelve el valor de inventario total y por categoría, ordenado por
// valor descendente (desempate por nombre de categoría para salida estable).
func (uc *AnalyticsUseCase) Analytics(ctx context.Context, businessID string) (*dto.AnalyticsResponse, error) {
	byCategory, err := uc.repo.GetInventoryValueByCategory(ctx, businessID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	items := make([]dto.CategoryValueDTO, 0, len(byCategory))
	for category, value := range byCategory {
		total = total.Add(value)
		items = append(items, dto.CategoryValueDTO{Category: category, Value: value})
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].Value.Equal(items[j].Value) {
			return items[i].Value.GreaterThan(items[j].Value)
		}
		return items[i].Category < items[j].Category
	})
	return &dto.AnalyticsResponse{InventoryValue: total, ByCategory: items}, nil
}
