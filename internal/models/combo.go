package models

import "github.com/shopspring/decimal"

// Combo maps to the combos table.
type Combo struct {
	ComboID  string          `json:"comboID"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	IsActive bool            `json:"isActive"`
	AuditFields
}

// ComboProduct maps to the combo_products table.
type ComboProduct struct {
	ComboID   string          `json:"comboID"`
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Position  int             `json:"position"`
}
