package services

import (
	"context"
	"fmt"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	portsrepo "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/middleware"
	"github.com/dmaldonadov/retail_backoffice_app/internal/platform/cache"
)

// catalogService provides read access to products and combos. Combo
// definitions are immutable, so lookups go through a cache.
type catalogService struct {
	productRepo portsrepo.ProductRepositoryFacade
	comboRepo   portsrepo.ComboRepositoryFacade
	comboCache  cache.ComboCache
}

// NewCatalogService creates a new CatalogSvcFacade.
func NewCatalogService(productRepo portsrepo.ProductRepositoryFacade, comboRepo portsrepo.ComboRepositoryFacade, comboCache cache.ComboCache) portssvc.CatalogSvcFacade {
	return &catalogService{
		productRepo: productRepo,
		comboRepo:   comboRepo,
		comboCache:  comboCache,
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

// GetProductByID retrieves a product by ID.
func (s *catalogService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return product, nil
}

// GetProductsByIDs retrieves multiple products keyed by ID. Missing IDs are
// simply absent from the map.
func (s *catalogService) GetProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	return s.productRepo.FindProductsByIDs(ctx, productIDs)
}

// ListProducts retrieves a paginated list of active products.
func (s *catalogService) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.productRepo.ListProducts(ctx, limit, offset)
}

// GetComboByID retrieves a combo, serving from the cache when possible.
// Cache failures fall back to the store.
func (s *catalogService) GetComboByID(ctx context.Context, comboID string) (*domain.Combo, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cached, err := s.comboCache.GetCombo(ctx, comboID)
	if err != nil {
		logger.Warn("Combo cache read failed, falling back to store", "error", err, "combo_id", comboID)
	} else if cached != nil {
		return cached, nil
	}

	combo, err := s.comboRepo.FindComboByID(ctx, comboID)
	if err != nil {
		return nil, fmt.Errorf("failed to find combo %s: %w", comboID, err)
	}

	if err := s.comboCache.SetCombo(ctx, *combo); err != nil {
		logger.Warn("Combo cache write failed", "error", err, "combo_id", comboID)
	}
	return combo, nil
}

// ListCombos retrieves a paginated list of active combos.
func (s *catalogService) ListCombos(ctx context.Context, limit int, offset int) ([]domain.Combo, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.comboRepo.ListCombos(ctx, limit, offset)
}
