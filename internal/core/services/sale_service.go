package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmaldonadov/retail_backoffice_app/internal/apperrors"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	portsrepo "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/middleware"
)

// Capabilities toggles optional behavior of the sale commit path. Resolved
// once from configuration at startup.
type Capabilities struct {
	CashDrawerEnabled bool
}

// SaleCommitOptions bounds the internal retry loop for transient conflicts.
type SaleCommitOptions struct {
	MaxAttempts  int
	RetryBackoff time.Duration
	Timeout      time.Duration
}

// saleService coordinates the atomic sale commit.
type saleService struct {
	saleRepo    portsrepo.SaleRepositoryWithTx
	expander    portssvc.ComboExpanderSvc
	stockLedger portssvc.StockLedgerSvc
	registerSvc portssvc.CashRegisterSvcFacade
	caps        Capabilities
	opts        SaleCommitOptions
}

// NewSaleService creates a new SaleSvcFacade.
func NewSaleService(saleRepo portsrepo.SaleRepositoryWithTx, expander portssvc.ComboExpanderSvc, stockLedger portssvc.StockLedgerSvc, registerSvc portssvc.CashRegisterSvcFacade, caps Capabilities, opts SaleCommitOptions) portssvc.SaleSvcFacade {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = 25 * time.Millisecond
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	return &saleService{
		saleRepo:    saleRepo,
		expander:    expander,
		stockLedger: stockLedger,
		registerSvc: registerSvc,
		caps:        caps,
		opts:        opts,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// CommitSale validates and persists a sale atomically: the items are expanded
// to stock deltas, stock is decremented with ledger rows appended, the sale
// total is posted as income to the open register, and the sale is inserted.
// All of it happens in one transaction per attempt; a lost version race rolls
// everything back and the attempt is retried with backoff.
func (s *saleService) CommitSale(ctx context.Context, sale domain.Sale, userID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(sale.Items) == 0 {
		return nil, ErrEmptySale
	}
	switch sale.PaymentMethod {
	case domain.PaymentCash, domain.PaymentCard, domain.PaymentTransfer:
	default:
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, sale.PaymentMethod)
	}

	now := time.Now().UTC()
	if sale.SaleDate.IsZero() {
		sale.SaleDate = now
	}
	sale.SaleID = uuid.NewString()
	sale.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	grandTotal := decimal.Zero
	for i := range sale.Items {
		item := &sale.Items[i]
		if item.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: item quantity must be positive for item %s", apperrors.ErrValidation, item.ItemID)
		}
		if item.UnitPrice.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: item unit price must be positive for item %s", apperrors.ErrValidation, item.ItemID)
		}
		item.SaleItemID = uuid.NewString()
		item.SaleID = sale.SaleID
		item.Position = i
		item.LineTotal = item.UnitPrice.Mul(item.Quantity)
		grandTotal = grandTotal.Add(item.LineTotal)
	}
	sale.GrandTotal = grandTotal

	// Expansion only reads the catalog, so it runs once outside the retry loop.
	deltas, err := s.expander.Expand(ctx, sale.Items)
	if err != nil {
		return nil, err
	}

	// Fast-fail on obviously short stock before opening a transaction. The
	// locked re-check inside ApplyDeltas remains authoritative.
	if err := s.stockLedger.CheckAvailability(ctx, deltas); err != nil {
		return nil, err
	}

	backoff := s.opts.RetryBackoff
	var lastErr error
	for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
		committed, err := s.commitOnce(ctx, &sale, deltas, userID)
		if err == nil {
			logger.Info("Sale committed", "sale_id", committed.SaleID, "grand_total", committed.GrandTotal.String(), "attempt", attempt)
			return committed, nil
		}
		if !errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}

		lastErr = err
		logger.Warn("Sale commit hit a write conflict, retrying", "sale_id", sale.SaleID, "attempt", attempt)
		if attempt < s.opts.MaxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}

	logger.Error("Sale commit exhausted retries", "sale_id", sale.SaleID, "attempts", s.opts.MaxAttempts)
	return nil, fmt.Errorf("sale commit failed after %d attempts: %w", s.opts.MaxAttempts, lastErr)
}

// commitOnce runs one full commit attempt inside its own transaction.
func (s *saleService) commitOnce(ctx context.Context, sale *domain.Sale, deltas []domain.StockDelta, userID string) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	tx, err := s.saleRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = s.saleRepo.Rollback(ctx, tx)
	}()

	if err := s.stockLedger.ApplyDeltas(ctx, tx, deltas, domain.MovementSale, &sale.SaleID, userID); err != nil {
		return nil, err
	}

	// Every sale posts its total as register income while the drawer feature
	// is on and a register happens to be open, regardless of payment method.
	// No open register is a normal condition, not an error.
	sale.CashRegisterID = nil
	if s.caps.CashDrawerEnabled {
		register, err := s.registerSvc.FindOpenRegisterInTx(ctx, tx)
		if err != nil {
			return nil, fmt.Errorf("failed to look up open register: %w", err)
		}
		if register != nil {
			if err := s.registerSvc.PostSaleIncomeInTx(ctx, tx, register.RegisterID, sale.GrandTotal, sale.SaleID, userID); err != nil {
				return nil, err
			}
			sale.CashRegisterID = &register.RegisterID
		}
	}

	if err := s.saleRepo.InsertSaleInTx(ctx, tx, *sale, sale.Items); err != nil {
		return nil, fmt.Errorf("failed to persist sale: %w", err)
	}

	if err := s.saleRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit sale transaction: %w", err)
	}
	return sale, nil
}

// GetSaleByID retrieves a sale with its items.
func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	return sale, nil
}

// ListSales retrieves a paginated list of sales, newest first.
func (s *saleService) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if limit <= 0 {
		limit = 20
	}

	sales, token, err := s.saleRepo.ListSales(ctx, limit, nextToken)
	if err != nil {
		logger.Error("Failed to list sales", "error", err)
		return nil, nil, fmt.Errorf("failed to retrieve sales: %w", err)
	}
	return sales, token, nil
}
