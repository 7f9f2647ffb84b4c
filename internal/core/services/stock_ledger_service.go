package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dmaldonadov/retail_backoffice_app/internal/apperrors"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	portsrepo "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/middleware"
)

// InsufficientStockError reports a delta that would drive a product's stock
// below zero.
type InsufficientStockError struct {
	ProductID string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %s, available %s",
		e.ProductID, e.Requested.String(), e.Available.String())
}

// stockLedgerService owns all stock mutations and the movement ledger.
type stockLedgerService struct {
	productRepo  portsrepo.ProductRepositoryFacade
	movementRepo portsrepo.StockMovementRepositoryWithTx
}

// NewStockLedgerService creates a new StockLedgerSvc.
func NewStockLedgerService(productRepo portsrepo.ProductRepositoryFacade, movementRepo portsrepo.StockMovementRepositoryWithTx) portssvc.StockLedgerSvc {
	return &stockLedgerService{
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

var _ portssvc.StockLedgerSvc = (*stockLedgerService)(nil)

// applyDeltas is the single write path for stock. It locks the affected
// product rows in ID order, verifies the resulting levels, writes the new
// stock with a version guard and appends one ledger row per delta. The caller
// owns the transaction.
func (s *stockLedgerService) applyDeltas(ctx context.Context, tx pgx.Tx, deltas []domain.StockDelta, movementType domain.StockMovementType, referenceID *string, reason string, userID string, allowNegative bool) ([]domain.StockMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(deltas) == 0 {
		return nil, fmt.Errorf("%w: no stock deltas to apply", apperrors.ErrValidation)
	}

	ordered := make([]domain.StockDelta, len(deltas))
	copy(ordered, deltas)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ProductID < ordered[j].ProductID })

	productIDs := make([]string, len(ordered))
	for i, d := range ordered {
		productIDs[i] = d.ProductID
	}

	productsMap, err := s.productRepo.FindProductsByIDsForUpdate(ctx, tx, productIDs)
	if err != nil {
		logger.Error("Failed to lock products for stock update", "error", err)
		return nil, fmt.Errorf("failed to lock products: %w", err)
	}

	now := time.Now().UTC()
	movements := make([]domain.StockMovement, 0, len(ordered))
	for _, delta := range ordered {
		product, found := productsMap[delta.ProductID]
		if !found {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, delta.ProductID)
		}

		newStock := product.Stock.Add(delta.Quantity)
		if newStock.IsNegative() && !allowNegative {
			return nil, &InsufficientStockError{
				ProductID: delta.ProductID,
				Requested: delta.Quantity.Neg(),
				Available: product.Stock,
			}
		}

		if err := s.productRepo.UpdateProductStockInTx(ctx, tx, product.ProductID, newStock, product.Version, userID, now); err != nil {
			return nil, fmt.Errorf("failed to update stock for product %s: %w", product.ProductID, err)
		}

		movements = append(movements, domain.StockMovement{
			MovementID:    uuid.NewString(),
			ProductID:     product.ProductID,
			Type:          movementType,
			Delta:         delta.Quantity,
			PreviousStock: product.Stock,
			NewStock:      newStock,
			ReferenceID:   referenceID,
			Reason:        reason,
			CreatedAt:     now,
			CreatedBy:     userID,
		})
	}

	if err := s.movementRepo.InsertMovementsInTx(ctx, tx, movements); err != nil {
		logger.Error("Failed to append stock movements", "error", err)
		return nil, fmt.Errorf("failed to append stock movements: %w", err)
	}

	return movements, nil
}

// ApplyDeltas implements portssvc.StockLedgerSvc for callers that already hold
// a transaction, such as the sale commit path.
func (s *stockLedgerService) ApplyDeltas(ctx context.Context, tx pgx.Tx, deltas []domain.StockDelta, movementType domain.StockMovementType, referenceID *string, userID string) error {
	_, err := s.applyDeltas(ctx, tx, deltas, movementType, referenceID, "", userID, false)
	return err
}

// CheckAvailability pre-validates deltas against current stock with a plain
// read. It lets callers fail before opening a transaction; the locked re-check
// in applyDeltas remains authoritative.
func (s *stockLedgerService) CheckAvailability(ctx context.Context, deltas []domain.StockDelta) error {
	if len(deltas) == 0 {
		return fmt.Errorf("%w: no stock deltas to check", apperrors.ErrValidation)
	}

	productIDs := make([]string, len(deltas))
	for i, d := range deltas {
		productIDs[i] = d.ProductID
	}

	productsMap, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return fmt.Errorf("failed to read products for availability check: %w", err)
	}

	for _, delta := range deltas {
		product, found := productsMap[delta.ProductID]
		if !found {
			return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, delta.ProductID)
		}
		if product.Stock.Add(delta.Quantity).IsNegative() {
			return &InsufficientStockError{
				ProductID: delta.ProductID,
				Requested: delta.Quantity.Neg(),
				Available: product.Stock,
			}
		}
	}
	return nil
}

// applySingle wraps one delta in its own transaction and returns the ledger row.
func (s *stockLedgerService) applySingle(ctx context.Context, productID string, quantity decimal.Decimal, movementType domain.StockMovementType, referenceID *string, reason string, userID string, allowNegative bool) (*domain.StockMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.movementRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction for stock movement", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = s.movementRepo.Rollback(ctx, tx)
	}()

	deltas := []domain.StockDelta{{ProductID: productID, Quantity: quantity}}
	movements, err := s.applyDeltas(ctx, tx, deltas, movementType, referenceID, reason, userID, allowNegative)
	if err != nil {
		return nil, err
	}

	if err := s.movementRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit stock movement transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	movement := movements[0]
	logger.Info("Stock movement recorded", "movement_id", movement.MovementID, "product_id", productID, "type", string(movementType))
	return &movement, nil
}

// Adjust records a manual stock correction for one product.
func (s *stockLedgerService) Adjust(ctx context.Context, productID string, quantity decimal.Decimal, reason string, allowNegative bool, userID string) (*domain.StockMovement, error) {
	if quantity.IsZero() {
		return nil, fmt.Errorf("%w: adjustment quantity must not be zero", apperrors.ErrValidation)
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: adjustment reason is required", apperrors.ErrValidation)
	}
	return s.applySingle(ctx, productID, quantity, domain.MovementManualAdjustment, nil, reason, userID, allowNegative)
}

// RecordIntake registers received goods, optionally linked to a supplier.
func (s *stockLedgerService) RecordIntake(ctx context.Context, productID string, quantity decimal.Decimal, supplierID *string, userID string) (*domain.StockMovement, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: intake quantity must be positive", apperrors.ErrValidation)
	}
	return s.applySingle(ctx, productID, quantity, domain.MovementIntake, supplierID, "", userID, false)
}

// RecordReturn registers returned goods back into stock.
func (s *stockLedgerService) RecordReturn(ctx context.Context, productID string, quantity decimal.Decimal, saleID *string, userID string) (*domain.StockMovement, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: return quantity must be positive", apperrors.ErrValidation)
	}
	return s.applySingle(ctx, productID, quantity, domain.MovementReturn, saleID, "", userID, false)
}

// ListMovementsByProduct retrieves the movement history for a product.
func (s *stockLedgerService) ListMovementsByProduct(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.StockMovement, *string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return nil, nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	if limit <= 0 {
		limit = 20
	}

	movements, token, err := s.movementRepo.ListMovementsByProduct(ctx, productID, limit, nextToken)
	if err != nil {
		logger.Error("Failed to list stock movements", "error", err, "product_id", productID)
		return nil, nil, fmt.Errorf("failed to retrieve stock movements: %w", err)
	}
	return movements, token, nil
}
