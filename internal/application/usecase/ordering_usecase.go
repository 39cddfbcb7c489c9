package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/skyllex94/orderexpress-api/internal/application/ports"
	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

// OrderingUseCase genera la hoja de pedido imprimible de un proveedor: los
// productos que surte, su presentación más barata por unidad y el conteo actual,
// para que quien hace el pedido rellene cantidades a mano o por teléfono.
type OrderingUseCase struct {
	vendorRepo   repository.VendorRepository
	businessRepo repository.BusinessRepository
	productRepo  repository.ProductRepository
	pkgRepo      repository.PackagingRepository
	levelRepo    repository.InventoryLevelRepository
	pdf          ports.OrderSheetGenerator
}

// NewOrderingUseCase construye el caso de uso.
func NewOrderingUseCase(
	vendorRepo repository.VendorRepository,
	businessRepo repository.BusinessRepository,
	productRepo repository.ProductRepository,
	pkgRepo repository.PackagingRepository,
	levelRepo repository.InventoryLevelRepository,
	pdf ports.OrderSheetGenerator,
) *OrderingUseCase {
	return &OrderingUseCase{
		vendorRepo:   vendorRepo,
		businessRepo: businessRepo,
		productRepo:  productRepo,
		pkgRepo:      pkgRepo,
		levelRepo:    levelRepo,
		pdf:          pdf,
	}
}

// VendorOrderSheet genera el PDF del pedido al proveedor dado.
// Devuelve domain.ErrNotFound si el proveedor no existe o es de otro negocio.
func (uc *OrderingUseCase) VendorOrderSheet(ctx context.Context, businessID, vendorID string) ([]byte, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil || vendor.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	products, err := uc.productRepo.ListByVendor(ctx, businessID, vendorID)
	if err != nil {
		return nil, err
	}
	lines := make([]ports.OrderSheetLine, 0, len(products))
	for _, p := range products {
		line := ports.OrderSheetLine{
			ProductName:  p.Name,
			Category:     p.Category,
			CurrentStock: decimal.Zero,
		}
		if level, err := uc.levelRepo.Get(ctx, businessID, p.ID); err == nil && level != nil {
			line.CurrentStock = level.Quantity
		}
		packaging, err := uc.pkgRepo.ListByProduct(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		// Presentación más barata por unidad; empate lo gana la primera
		for _, pk := range packaging {
			unit := pk.UnitPrice()
			if line.PackagingName == "" || unit.LessThan(line.UnitPrice) {
				line.PackagingName = pk.Name
				line.UnitsPerPack = pk.UnitsPerPack
				line.PackPrice = pk.PackPrice
				line.UnitPrice = unit
			}
		}
		lines = append(lines, line)
	}

	return uc.pdf.GenerateOrderSheet(ctx, business, vendor, lines)
}
