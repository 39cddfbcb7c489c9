package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/skyllex94/orderexpress-api/internal/application/dto"
	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos y sus presentaciones.
// El conteo de inventario se maneja aparte (InventoryUseCase).
type ProductUseCase struct {
	repo       repository.ProductRepository
	pkgRepo    repository.PackagingRepository
	vendorRepo repository.VendorRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	pkgRepo repository.PackagingRepository,
	vendorRepo repository.VendorRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, pkgRepo: pkgRepo, vendorRepo: vendorRepo}
}

// Create crea un producto. Nombre único por negocio; el proveedor, si viene,
// debe existir y pertenecer al mismo negocio.
func (uc *ProductUseCase) Create(ctx context.Context, businessID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByBusinessAndName(ctx, businessID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.VendorID != "" {
		vendor, err := uc.vendorRepo.GetByID(ctx, in.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil || vendor.BusinessID != businessID {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		VendorID:   in.VendorID,
		Name:       in.Name,
		Category:   in.Category,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return uc.toProductResponse(ctx, product)
}

// GetByID obtiene un producto con sus presentaciones. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toProductResponse(ctx, product)
}

// List lista productos del negocio con paginación y filtro de búsqueda opcional.
// La búsqueda es insensible a mayúsculas y tildes ("jalapeno" encuentra "Jalapeño").
func (uc *ProductUseCase) List(ctx context.Context, businessID, search string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	needle := NormalizeSearch(search)
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if needle != "" && !strings.Contains(NormalizeSearch(p.Name), needle) {
			continue
		}
		resp, err := uc.toProductResponse(ctx, p)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un producto. (nil, nil) si no existe.
func (uc *ProductUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.BusinessID != businessID {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		product.Category = *in.Category
	}
	if in.VendorID != nil {
		if *in.VendorID != "" {
			vendor, err := uc.vendorRepo.GetByID(ctx, *in.VendorID)
			if err != nil {
				return nil, err
			}
			if vendor == nil || vendor.BusinessID != businessID {
				return nil, domain.ErrInvalidInput
			}
		}
		product.VendorID = *in.VendorID
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return uc.toProductResponse(ctx, product)
}

// Delete elimina un producto del negocio.
func (uc *ProductUseCase) Delete(ctx context.Context, businessID, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil || product.BusinessID != businessID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// AddPackaging añade una presentación de compra al producto.
func (uc *ProductUseCase) AddPackaging(ctx context.Context, businessID, productID string, in dto.CreatePackagingRequest) (*dto.PackagingResponse, error) {
	product, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	if in.UnitsPerPack < 1 || in.PackPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	pkg := &entity.Packaging{
		ID:           uuid.New().String(),
		ProductID:    productID,
		Name:         in.Name,
		UnitsPerPack: in.UnitsPerPack,
		PackPrice:    in.PackPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.pkgRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}
	return toPackagingResponse(pkg), nil
}

// RemovePackaging elimina una presentación del producto.
func (uc *ProductUseCase) RemovePackaging(ctx context.Context, businessID, productID, packagingID string) error {
	product, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil || product.BusinessID != businessID {
		return domain.ErrNotFound
	}
	pkg, err := uc.pkgRepo.GetByID(ctx, packagingID)
	if err != nil {
		return err
	}
	if pkg == nil || pkg.ProductID != productID {
		return domain.ErrNotFound
	}
	return uc.pkgRepo.Delete(ctx, packagingID)
}

func (uc *ProductUseCase) toProductResponse(ctx context.Context, p *entity.Product) (*dto.ProductResponse, error) {
	packaging, err := uc.pkgRepo.ListByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	pkgs := make([]dto.PackagingResponse, 0, len(packaging))
	for _, pk := range packaging {
		pkgs = append(pkgs, *toPackagingResponse(pk))
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		BusinessID: p.BusinessID,
		VendorID:   p.VendorID,
		Name:       p.Name,
		Category:   p.Category,
		Status:     p.Status,
		Packaging:  pkgs,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}, nil
}

func toPackagingResponse(p *entity.Packaging) *dto.PackagingResponse {
	return &dto.PackagingResponse{
		ID:           p.ID,
		ProductID:    p.ProductID,
		Name:         p.Name,
		UnitsPerPack: p.UnitsPerPack,
		PackPrice:    p.PackPrice,
		UnitPrice:    p.UnitPrice(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// searchNormalizer descompone (NFD), elimina marcas diacríticas y recompone (NFC):
// "Jalapeño" → "Jalapeno".
var searchNormalizer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeSearch normaliza un término de búsqueda: minúsculas y sin tildes.
func NormalizeSearch(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	out, _, err := transform.String(searchNormalizer, s)
	if err != nil {
		return s
	}
	return out
}
