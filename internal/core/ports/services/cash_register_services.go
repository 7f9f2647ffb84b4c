package services

import (
	"context"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CashRegisterSvc manages daily register sessions and their cash movements
type CashRegisterSvc interface {
	// OpenRegister opens a new register session with an opening float. Only
	// one register may be open at a time.
	OpenRegister(ctx context.Context, openingAmount decimal.Decimal, userID string) (*domain.CashRegister, error)

	// PostMovement records a manual income or expense against the open register.
	PostMovement(ctx context.Context, registerID string, movementType domain.CashMovementType, amount decimal.Decimal, category string, userID string) (*domain.CashMovement, error)

	// CloseRegister closes a register with the counted amount and returns the
	// closing report. Closing is terminal.
	CloseRegister(ctx context.Context, registerID string, countedAmount decimal.Decimal, userID string) (*domain.ClosingReport, error)

	// FindOpenRegister returns the open register, or (nil, nil) when none is open.
	FindOpenRegister(ctx context.Context) (*domain.CashRegister, error)

	// GetRegister retrieves a register by ID.
	GetRegister(ctx context.Context, registerID string) (*domain.CashRegister, error)

	// ListMovements retrieves all movements for a register, oldest first.
	ListMovements(ctx context.Context, registerID string) ([]domain.CashMovement, error)
}

// CashRegisterTxSvc exposes the register operations the sale commit path runs
// inside its own transaction.
type CashRegisterTxSvc interface {
	// FindOpenRegisterInTx locks and returns the open register within the
	// caller's transaction, or (nil, nil) when none is open.
	FindOpenRegisterInTx(ctx context.Context, tx pgx.Tx) (*domain.CashRegister, error)

	// PostSaleIncomeInTx records a sale-linked cash income against a register
	// within the caller's transaction.
	PostSaleIncomeInTx(ctx context.Context, tx pgx.Tx, registerID string, amount decimal.Decimal, saleID string, userID string) error
}

// CashRegisterSvcFacade combines all register service interfaces
type CashRegisterSvcFacade interface {
	CashRegisterSvc
	CashRegisterTxSvc
}
