package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovement maps to the append-only stock_movements table.
type StockMovement struct {
	MovementID    string          `json:"movementID"`
	ProductID     string          `json:"productID"`
	Type          string          `json:"type"`
	Delta         decimal.Decimal `json:"delta"`
	PreviousStock decimal.Decimal `json:"previousStock"`
	NewStock      decimal.Decimal `json:"newStock"`
	ReferenceID   *string         `json:"referenceID"`
	Reason        string          `json:"reason"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}
