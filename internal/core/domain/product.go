package domain

import (
	"github.com/shopspring/decimal"
)

// ProductUnit defines how a product's stock quantity is measured.
type ProductUnit string

const (
	UnitDiscrete ProductUnit = "DISCRETE"
	UnitWeight   ProductUnit = "WEIGHT"
	UnitVolume   ProductUnit = "VOLUME"
)

// Product represents a sellable catalog item within the core domain.
// Stock is mutated exclusively by the stock ledger; every change is paired
// with an appended StockMovement row.
type Product struct {
	ProductID string          `json:"productID"` // Primary Key (e.g., UUID)
	Name      string          `json:"name"`
	Barcode   string          `json:"barcode"` // Nullable scan code
	Unit      ProductUnit     `json:"unit"`    // DISCRETE, WEIGHT or VOLUME
	Price     decimal.Decimal `json:"price"`   // Current list price per unit
	Stock     decimal.Decimal `json:"stock"`   // Non-negative rational quantity
	IsActive  bool            `json:"isActive"`
	Version   int64           `json:"-"` // Optimistic concurrency guard, bumped on every stock write
	AuditFields
}
