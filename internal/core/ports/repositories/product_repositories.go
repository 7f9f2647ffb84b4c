package repositories

import (
	"context"
	"time"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a specific product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves multiple products by their IDs.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves a paginated list of active products.
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
}

// ProductStockSupport defines the operations the stock ledger needs to mutate
// product stock inside a transaction. No other component writes Product.Stock.
type ProductStockSupport interface {
	// FindProductsByIDsForUpdate selects products by ID and locks the rows for
	// update within a transaction. Rows are locked in product-id ascending
	// order regardless of the order of the input slice.
	FindProductsByIDsForUpdate(ctx context.Context, tx pgx.Tx, productIDs []string) (map[string]domain.Product, error)

	// UpdateProductStockInTx writes a new stock level for one product inside
	// the transaction. The update is guarded by the version read at lock time;
	// if another writer bumped the version in between, apperrors.ErrConflict
	// is returned and nothing is written.
	UpdateProductStockInTx(ctx context.Context, tx pgx.Tx, productID string, newStock decimal.Decimal, expectedVersion int64, userID string, now time.Time) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductStockSupport
}
