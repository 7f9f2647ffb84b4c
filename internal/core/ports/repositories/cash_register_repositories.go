package repositories

import (
	"context"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CashRegisterReader defines read operations for register sessions
type CashRegisterReader interface {
	// FindRegisterByID retrieves a register by its ID.
	FindRegisterByID(ctx context.Context, registerID string) (*domain.CashRegister, error)

	// FindOpenRegister retrieves the currently open register, or (nil, nil)
	// when no register is open.
	FindOpenRegister(ctx context.Context) (*domain.CashRegister, error)

	// ListMovementsByRegister retrieves all movements linked to a register,
	// oldest first.
	ListMovementsByRegister(ctx context.Context, registerID string) ([]domain.CashMovement, error)
}

// CashRegisterWriter defines write operations for register sessions
type CashRegisterWriter interface {
	// InsertRegister persists a new open register. The store enforces the
	// single-open-register invariant; a losing concurrent open gets
	// apperrors.ErrDuplicate.
	InsertRegister(ctx context.Context, register domain.CashRegister) error
}

// CashRegisterTxSupport defines the in-transaction operations used by register
// close and by the sale commit path.
type CashRegisterTxSupport interface {
	// FindRegisterByIDForUpdate locks a register row within the transaction.
	FindRegisterByIDForUpdate(ctx context.Context, tx pgx.Tx, registerID string) (*domain.CashRegister, error)

	// FindOpenRegisterForUpdate locks the open register row, if any. Returns
	// (nil, nil) when no register is open.
	FindOpenRegisterForUpdate(ctx context.Context, tx pgx.Tx) (*domain.CashRegister, error)

	// InsertMovementInTx appends a cash movement within the caller's transaction.
	InsertMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.CashMovement) error

	// SumMovementsInTx totals income and expense movements for a register
	// within the transaction.
	SumMovementsInTx(ctx context.Context, tx pgx.Tx, registerID string) (income decimal.Decimal, expense decimal.Decimal, err error)

	// CloseRegisterInTx transitions a register to CLOSED, persisting the
	// counted, expected and discrepancy amounts. Terminal.
	CloseRegisterInTx(ctx context.Context, tx pgx.Tx, register domain.CashRegister) error
}

// CashRegisterRepositoryFacade combines all register-related repository interfaces
type CashRegisterRepositoryFacade interface {
	CashRegisterReader
	CashRegisterWriter
	CashRegisterTxSupport
}

// CashRegisterRepositoryWithTx extends the facade with transaction capabilities
type CashRegisterRepositoryWithTx interface {
	CashRegisterRepositoryFacade
	TransactionManager
}
