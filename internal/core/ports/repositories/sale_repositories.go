package repositories

import (
	"context"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale header and its items.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves a paginated list of sales using token-based
	// pagination. It returns the sales, a token for the next page, and an error.
	ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// InsertSaleInTx persists a sale header and its items within the caller's
	// transaction. Sales are never updated afterwards.
	InsertSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale, items []domain.SaleItem) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

// SaleRepositoryWithTx extends SaleRepositoryFacade with transaction capabilities
type SaleRepositoryWithTx interface {
	SaleRepositoryFacade
	TransactionManager
}
