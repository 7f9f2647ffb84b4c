package services

import (
	"context"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
)

// SaleSvc defines the sale commit and query operations
type SaleSvc interface {
	// CommitSale atomically expands the sale's items, decrements stock,
	// posts the total as income to the open register if one exists, and
	// persists the sale. Either every effect happens or none does. Transient
	// write conflicts are retried internally.
	CommitSale(ctx context.Context, sale domain.Sale, userID string) (*domain.Sale, error)

	// GetSaleByID retrieves a sale with its items.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves a paginated list of sales, newest first.
	ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error)
}

// SaleSvcFacade combines all sale service interfaces
type SaleSvcFacade interface {
	SaleSvc
}
