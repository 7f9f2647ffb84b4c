package domain

import (
	"github.com/shopspring/decimal"
)

// ComboProduct is one constituent line of a combo: a plain product and the
// quantity of it bundled per combo unit. Combos may not reference other combos.
type ComboProduct struct {
	ComboID   string          `json:"comboID"`
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"` // Units of the product per combo sold
	Price     decimal.Decimal `json:"price"`    // Share of the combo price attributed to this line
	Position  int             `json:"position"` // Preserves the authored ordering
}

// Combo is a bundle of constituent products sold as one purchasable unit at a
// composite price. Immutable reference data from the expander's point of view.
type Combo struct {
	ComboID  string          `json:"comboID"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	IsActive bool            `json:"isActive"`
	Products []ComboProduct  `json:"products"`
	AuditFields
}
