package services

import (
	"context"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// StockLedgerSvc owns all stock mutations. Every change to Product.Stock goes
// through it and leaves an immutable movement row behind.
type StockLedgerSvc interface {
	// ApplyDeltas locks the affected products inside the caller's transaction,
	// verifies availability, writes the new stock levels and appends one
	// movement row per delta. Deltas that would drive stock negative return a
	// typed insufficient-stock error; a lost version race returns
	// apperrors.ErrConflict.
	ApplyDeltas(ctx context.Context, tx pgx.Tx, deltas []domain.StockDelta, movementType domain.StockMovementType, referenceID *string, userID string) error

	// CheckAvailability verifies, without locking or mutating anything, that
	// the deltas would not drive any product's stock negative. A short product
	// returns a typed insufficient-stock error, an unknown one
	// apperrors.ErrNotFound. ApplyDeltas re-checks under lock and remains
	// authoritative.
	CheckAvailability(ctx context.Context, deltas []domain.StockDelta) error

	// Adjust records a manual stock correction for one product. A negative
	// resulting stock is rejected unless allowNegative is set.
	Adjust(ctx context.Context, productID string, quantity decimal.Decimal, reason string, allowNegative bool, userID string) (*domain.StockMovement, error)

	// RecordIntake registers received goods for one product, optionally linked
	// to a supplier.
	RecordIntake(ctx context.Context, productID string, quantity decimal.Decimal, supplierID *string, userID string) (*domain.StockMovement, error)

	// RecordReturn registers returned goods from a sale back into stock.
	RecordReturn(ctx context.Context, productID string, quantity decimal.Decimal, saleID *string, userID string) (*domain.StockMovement, error)

	// ListMovementsByProduct retrieves the movement history for a product,
	// newest first, with token pagination.
	ListMovementsByProduct(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.StockMovement, *string, error)
}
