package repositories

import (
	"context"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// StockMovementReader defines read operations for the stock ledger
type StockMovementReader interface {
	// ListMovementsByProduct retrieves a paginated list of movements for one
	// product, newest first, using token-based pagination.
	ListMovementsByProduct(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.StockMovement, *string, error)
}

// StockMovementWriter defines write operations for the stock ledger. The
// ledger is append-only: there is no update or delete.
type StockMovementWriter interface {
	// InsertMovementsInTx appends movement rows within the caller's transaction.
	InsertMovementsInTx(ctx context.Context, tx pgx.Tx, movements []domain.StockMovement) error
}

// StockMovementRepositoryFacade combines all stock-ledger repository interfaces
type StockMovementRepositoryFacade interface {
	StockMovementReader
	StockMovementWriter
}

// StockMovementRepositoryWithTx extends the facade with transaction capabilities
type StockMovementRepositoryWithTx interface {
	StockMovementRepositoryFacade
	TransactionManager
}
