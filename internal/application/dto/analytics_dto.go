package dto

import "github.com/shopspring/decimal"

// OverviewResponse métricas de la sección overview del dashboard.
type OverviewResponse struct {
	ProductCount       int             `json:"product_count"`
	VendorCount        int             `json:"vendor_count"`
	MemberCount        int             `json:"member_count"`
	PendingInvitations int             `json:"pending_invitations"`
	InventoryValue     decimal.Decimal `json:"inventory_value"`
}

// CategoryValueDTO valor de inventario de una categoría de producto.
type CategoryValueDTO struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// AnalyticsResponse desglose para la sección analytics.
type AnalyticsResponse struct {
	InventoryValue decimal.Decimal    `json:"inventory_value"`
	ByCategory     []CategoryValueDTO `json:"by_category"`
}
