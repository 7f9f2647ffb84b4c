package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashRegister maps to the cash_registers table.
type CashRegister struct {
	RegisterID     string           `json:"registerID"`
	Status         string           `json:"status"`
	OpeningAmount  decimal.Decimal  `json:"openingAmount"`
	ClosingAmount  *decimal.Decimal `json:"closingAmount"`
	ExpectedAmount *decimal.Decimal `json:"expectedAmount"`
	Discrepancy    *decimal.Decimal `json:"discrepancy"`
	OpenedAt       time.Time        `json:"openedAt"`
	ClosedAt       *time.Time       `json:"closedAt"`
	AuditFields
}

// CashMovement maps to the append-only cash_movements table.
type CashMovement struct {
	MovementID  string          `json:"movementID"`
	RegisterID  string          `json:"registerID"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	ReferenceID *string         `json:"referenceID"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}
