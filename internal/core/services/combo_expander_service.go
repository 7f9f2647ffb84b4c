package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dmaldonadov/retail_backoffice_app/internal/apperrors"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	portssvc "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/middleware"
)

var (
	ErrComboNested   = errors.New("combo references another combo as a constituent")
	ErrComboInactive = errors.New("combo is inactive")
	ErrEmptySale     = errors.New("sale must have at least one item")
)

// comboExpanderService flattens sale items into per-product stock deltas.
type comboExpanderService struct {
	catalogSvc portssvc.CatalogSvcFacade
}

// NewComboExpanderService creates a new ComboExpanderSvc.
func NewComboExpanderService(catalogSvc portssvc.CatalogSvcFacade) portssvc.ComboExpanderSvc {
	return &comboExpanderService{catalogSvc: catalogSvc}
}

var _ portssvc.ComboExpanderSvc = (*comboExpanderService)(nil)

// Expand resolves each sale item to the products it consumes and merges the
// quantities into one negative delta per distinct product. The result is
// sorted by product ID so downstream locking is deterministic.
func (s *comboExpanderService) Expand(ctx context.Context, items []domain.SaleItem) ([]domain.StockDelta, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(items) == 0 {
		return nil, ErrEmptySale
	}

	consumed := make(map[string]decimal.Decimal)
	for _, item := range items {
		if item.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: item quantity must be positive for item %s", apperrors.ErrValidation, item.ItemID)
		}

		switch item.ItemKind {
		case domain.ItemProduct:
			consumed[item.ItemID] = consumed[item.ItemID].Add(item.Quantity)
		case domain.ItemCombo:
			combo, err := s.catalogSvc.GetComboByID(ctx, item.ItemID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve combo %s: %w", item.ItemID, err)
			}
			if !combo.IsActive {
				return nil, fmt.Errorf("%w: %s", ErrComboInactive, item.ItemID)
			}
			for _, line := range combo.Products {
				consumed[line.ProductID] = consumed[line.ProductID].Add(line.Quantity.Mul(item.Quantity))
			}
		default:
			return nil, fmt.Errorf("%w: unknown item kind %q", apperrors.ErrValidation, item.ItemKind)
		}
	}

	productIDs := make([]string, 0, len(consumed))
	for id := range consumed {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	// Verify every referenced ID is an actual product. A combo line pointing
	// at another combo would otherwise slip through as a phantom product.
	productsMap, err := s.catalogSvc.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		logger.Error("Failed to fetch products during item expansion", "error", err)
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	deltas := make([]domain.StockDelta, 0, len(productIDs))
	for _, id := range productIDs {
		product, found := productsMap[id]
		if !found {
			if combo, comboErr := s.catalogSvc.GetComboByID(ctx, id); comboErr == nil && combo != nil {
				logger.Warn("Combo constituent resolves to another combo", "id", id)
				return nil, fmt.Errorf("%w: %s", ErrComboNested, id)
			}
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, id)
		}
		if !product.IsActive {
			return nil, fmt.Errorf("%w: product %s is inactive", apperrors.ErrValidation, id)
		}
		deltas = append(deltas, domain.StockDelta{
			ProductID: id,
			Quantity:  consumed[id].Neg(),
		})
	}

	return deltas, nil
}
