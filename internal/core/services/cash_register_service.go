package services

import (
	"context"
	"errors"
	"fmt"
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

var (
	ErrRegisterAlreadyOpen   = errors.New("a cash register is already open")
	ErrRegisterClosed        = errors.New("cash register is closed")
	ErrRegisterAlreadyClosed = errors.New("cash register is already closed")
)

// Category assigned to automatic income movements posted by the sale path.
const saleIncomeCategory = "SALE"

// cashRegisterService manages daily register sessions.
type cashRegisterService struct {
	registerRepo portsrepo.CashRegisterRepositoryWithTx
}

// NewCashRegisterService creates a new CashRegisterSvcFacade.
func NewCashRegisterService(registerRepo portsrepo.CashRegisterRepositoryWithTx) portssvc.CashRegisterSvcFacade {
	return &cashRegisterService{registerRepo: registerRepo}
}

var _ portssvc.CashRegisterSvcFacade = (*cashRegisterService)(nil)

// OpenRegister opens a new session with an opening float. The store's
// single-open-register constraint decides the winner under concurrency.
func (s *cashRegisterService) OpenRegister(ctx context.Context, openingAmount decimal.Decimal, userID string) (*domain.CashRegister, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if openingAmount.IsNegative() {
		return nil, fmt.Errorf("%w: opening amount must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	register := domain.CashRegister{
		RegisterID:    uuid.NewString(),
		Status:        domain.RegisterOpen,
		OpeningAmount: openingAmount,
		OpenedAt:      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.registerRepo.InsertRegister(ctx, register); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Register open rejected, another register is open")
			return nil, ErrRegisterAlreadyOpen
		}
		logger.Error("Failed to open register", "error", err)
		return nil, fmt.Errorf("failed to open register: %w", err)
	}

	logger.Info("Register opened", "register_id", register.RegisterID, "opening_amount", openingAmount.String())
	return &register, nil
}

// PostMovement records a manual income or expense against an open register.
// The register row is locked for the duration of the insert so a concurrent
// close either counts this movement in its expected total or this call sees
// the CLOSED status and is rejected.
func (s *cashRegisterService) PostMovement(ctx context.Context, registerID string, movementType domain.CashMovementType, amount decimal.Decimal, category string, userID string) (*domain.CashMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: movement amount must be positive", apperrors.ErrValidation)
	}
	if movementType != domain.CashIncome && movementType != domain.CashExpense {
		return nil, fmt.Errorf("%w: unknown movement type %q", apperrors.ErrValidation, movementType)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: movement category is required", apperrors.ErrValidation)
	}

	tx, err := s.registerRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction for cash movement", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = s.registerRepo.Rollback(ctx, tx)
	}()

	register, err := s.registerRepo.FindRegisterByIDForUpdate(ctx, tx, registerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find register %s: %w", registerID, err)
	}
	if register.Status != domain.RegisterOpen {
		return nil, ErrRegisterClosed
	}

	movement := domain.CashMovement{
		MovementID: uuid.NewString(),
		RegisterID: registerID,
		Type:       movementType,
		Amount:     amount,
		Category:   category,
		CreatedAt:  time.Now().UTC(),
		CreatedBy:  userID,
	}

	if err := s.registerRepo.InsertMovementInTx(ctx, tx, movement); err != nil {
		logger.Error("Failed to record cash movement", "error", err, "register_id", registerID)
		return nil, fmt.Errorf("failed to record cash movement: %w", err)
	}

	if err := s.registerRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit cash movement", "error", err, "register_id", registerID)
		return nil, fmt.Errorf("failed to commit cash movement: %w", err)
	}

	logger.Info("Cash movement recorded", "movement_id", movement.MovementID, "register_id", registerID, "type", string(movementType))
	return &movement, nil
}

// CloseRegister closes a session and computes the reconciliation report. The
// register row is locked so a racing sale cannot post income mid-close.
func (s *cashRegisterService) CloseRegister(ctx context.Context, registerID string, countedAmount decimal.Decimal, userID string) (*domain.ClosingReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if countedAmount.IsNegative() {
		return nil, fmt.Errorf("%w: counted amount must not be negative", apperrors.ErrValidation)
	}

	tx, err := s.registerRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction for register close", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = s.registerRepo.Rollback(ctx, tx)
	}()

	register, err := s.registerRepo.FindRegisterByIDForUpdate(ctx, tx, registerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find register %s: %w", registerID, err)
	}
	if register.Status == domain.RegisterClosed {
		return nil, ErrRegisterAlreadyClosed
	}

	income, expense, err := s.registerRepo.SumMovementsInTx(ctx, tx, registerID)
	if err != nil {
		logger.Error("Failed to sum register movements", "error", err, "register_id", registerID)
		return nil, fmt.Errorf("failed to sum register movements: %w", err)
	}

	now := time.Now().UTC()
	expected := register.OpeningAmount.Add(income).Sub(expense)
	discrepancy := countedAmount.Sub(expected)

	register.Status = domain.RegisterClosed
	register.ClosingAmount = &countedAmount
	register.ExpectedAmount = &expected
	register.Discrepancy = &discrepancy
	register.ClosedAt = &now
	register.LastUpdatedAt = now
	register.LastUpdatedBy = userID

	if err := s.registerRepo.CloseRegisterInTx(ctx, tx, *register); err != nil {
		logger.Error("Failed to close register", "error", err, "register_id", registerID)
		return nil, fmt.Errorf("failed to close register: %w", err)
	}

	if err := s.registerRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit register close", "error", err, "register_id", registerID)
		return nil, fmt.Errorf("failed to commit register close: %w", err)
	}

	logger.Info("Register closed", "register_id", registerID, "expected", expected.String(), "counted", countedAmount.String(), "discrepancy", discrepancy.String())
	return &domain.ClosingReport{
		RegisterID:  registerID,
		Expected:    expected,
		Counted:     countedAmount,
		Discrepancy: discrepancy,
	}, nil
}

// FindOpenRegister returns the open register, or (nil, nil) when none is open.
func (s *cashRegisterService) FindOpenRegister(ctx context.Context) (*domain.CashRegister, error) {
	return s.registerRepo.FindOpenRegister(ctx)
}

// GetRegister retrieves a register by ID.
func (s *cashRegisterService) GetRegister(ctx context.Context, registerID string) (*domain.CashRegister, error) {
	register, err := s.registerRepo.FindRegisterByID(ctx, registerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find register %s: %w", registerID, err)
	}
	return register, nil
}

// ListMovements retrieves all movements for a register, oldest first.
func (s *cashRegisterService) ListMovements(ctx context.Context, registerID string) ([]domain.CashMovement, error) {
	if _, err := s.registerRepo.FindRegisterByID(ctx, registerID); err != nil {
		return nil, fmt.Errorf("failed to find register %s: %w", registerID, err)
	}
	return s.registerRepo.ListMovementsByRegister(ctx, registerID)
}

// FindOpenRegisterInTx locks and returns the open register within the
// caller's transaction, or (nil, nil) when none is open.
func (s *cashRegisterService) FindOpenRegisterInTx(ctx context.Context, tx pgx.Tx) (*domain.CashRegister, error) {
	return s.registerRepo.FindOpenRegisterForUpdate(ctx, tx)
}

// PostSaleIncomeInTx records a sale-linked income movement within the
// caller's transaction.
func (s *cashRegisterService) PostSaleIncomeInTx(ctx context.Context, tx pgx.Tx, registerID string, amount decimal.Decimal, saleID string, userID string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: sale income amount must be positive", apperrors.ErrValidation)
	}

	movement := domain.CashMovement{
		MovementID:  uuid.NewString(),
		RegisterID:  registerID,
		Type:        domain.CashIncome,
		Amount:      amount,
		Category:    saleIncomeCategory,
		ReferenceID: &saleID,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   userID,
	}

	if err := s.registerRepo.InsertMovementInTx(ctx, tx, movement); err != nil {
		return fmt.Errorf("failed to post sale income: %w", err)
	}
	return nil
}
