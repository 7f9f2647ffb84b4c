package services

import (
	"context"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
)

// ComboExpanderSvc resolves sale items into per-product stock deltas.
// Combo items are flattened into their constituent products; quantities for
// the same product across items are merged into one negative delta.
type ComboExpanderSvc interface {
	// Expand converts sale items to consolidated stock deltas, one per
	// distinct product, each with a negative quantity.
	Expand(ctx context.Context, items []domain.SaleItem) ([]domain.StockDelta, error)
}
