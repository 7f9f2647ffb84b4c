package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovementType classifies the origin of a stock change.
type StockMovementType string

const (
	MovementSale             StockMovementType = "SALE"
	MovementManualAdjustment StockMovementType = "MANUAL_ADJUSTMENT"
	MovementIntake           StockMovementType = "INTAKE"
	MovementReturn           StockMovementType = "RETURN"
)

// StockMovement is one immutable entry in the stock ledger. Rows are only ever
// appended; corrections are expressed as new movements, never as updates.
type StockMovement struct {
	MovementID    string            `json:"movementID"`
	ProductID     string            `json:"productID"`
	Type          StockMovementType `json:"type"`
	Delta         decimal.Decimal   `json:"delta"`         // Signed; negative consumes stock
	PreviousStock decimal.Decimal   `json:"previousStock"` // Stock before this movement
	NewStock      decimal.Decimal   `json:"newStock"`      // Stock after; PreviousStock + Delta
	ReferenceID   *string           `json:"referenceID"`   // Originating sale, intake or adjustment
	Reason        string            `json:"reason"`        // Free-text, mostly for manual adjustments
	CreatedAt     time.Time         `json:"createdAt"`
	CreatedBy     string            `json:"createdBy"`
}

// Reconciles reports whether the movement's before/after snapshot agrees with
// its delta.
func (m StockMovement) Reconciles() bool {
	return m.PreviousStock.Add(m.Delta).Equal(m.NewStock)
}

// StockDelta is a post-expansion, per-product signed quantity change ready for
// application against the ledger. Deltas handed to the ledger are merged per
// product and sorted by ProductID ascending; that fixed order is also the lock
// acquisition order for concurrent sales.
type StockDelta struct {
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"` // Signed; negative consumes stock
}
