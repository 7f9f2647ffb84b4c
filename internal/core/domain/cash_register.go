package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashRegisterStatus is the lifecycle state of a register session.
type CashRegisterStatus string

const (
	RegisterOpen   CashRegisterStatus = "OPEN"
	RegisterClosed CashRegisterStatus = "CLOSED"
)

// CashRegister is one open-to-closed drawer session. At most one register is
// OPEN at any instant; the store enforces this with a partial unique index,
// not an application-level check. A closed register is never reopened.
type CashRegister struct {
	RegisterID     string             `json:"registerID"`
	Status         CashRegisterStatus `json:"status"`
	OpeningAmount  decimal.Decimal    `json:"openingAmount"`
	ClosingAmount  *decimal.Decimal   `json:"closingAmount"`  // Counted at close
	ExpectedAmount *decimal.Decimal   `json:"expectedAmount"` // Ledger-computed at close
	Discrepancy    *decimal.Decimal   `json:"discrepancy"`    // ClosingAmount - ExpectedAmount
	OpenedAt       time.Time          `json:"openedAt"`
	ClosedAt       *time.Time         `json:"closedAt"`
	AuditFields
}

// CashMovementType carries the sign of a cash movement; amounts are stored
// positive.
type CashMovementType string

const (
	CashIncome  CashMovementType = "INCOME"
	CashExpense CashMovementType = "EXPENSE"
)

// CashMovement is one immutable entry in a register's movement log, created
// either manually or automatically by a sale commit.
type CashMovement struct {
	MovementID  string           `json:"movementID"`
	RegisterID  string           `json:"registerID"`
	Type        CashMovementType `json:"type"`
	Amount      decimal.Decimal  `json:"amount"` // Always positive
	Category    string           `json:"category"`
	ReferenceID *string          `json:"referenceID"` // Originating sale for automatic income
	CreatedAt   time.Time        `json:"createdAt"`
	CreatedBy   string           `json:"createdBy"`
}

// ClosingReport is the reconciliation result returned when a register closes.
type ClosingReport struct {
	RegisterID  string          `json:"registerID"`
	Expected    decimal.Decimal `json:"expected"` // Opening + Σincome − Σexpense
	Counted     decimal.Decimal `json:"counted"`
	Discrepancy decimal.Decimal `json:"discrepancy"` // Counted − Expected
}
