package services

import (
	"context"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
)

// CatalogSvc defines read operations over products and combos
type CatalogSvc interface {
	// GetProductByID retrieves a product by ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// GetProductsByIDs retrieves multiple products keyed by ID.
	GetProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves a paginated list of active products.
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)

	// GetComboByID retrieves a combo with its constituent lines.
	GetComboByID(ctx context.Context, comboID string) (*domain.Combo, error)

	// ListCombos retrieves a paginated list of active combos.
	ListCombos(ctx context.Context, limit int, offset int) ([]domain.Combo, error)
}

// CatalogSvcFacade combines all catalog service interfaces
type CatalogSvcFacade interface {
	CatalogSvc
}
