package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemKind mirrors the sale_items.item_kind column.
type SaleItemKind string

const (
	ItemProduct SaleItemKind = "PRODUCT"
	ItemCombo   SaleItemKind = "COMBO"
)

// Sale maps to the sales table.
type Sale struct {
	SaleID         string          `json:"saleID"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	PaymentMethod  string          `json:"paymentMethod"`
	SaleDate       time.Time       `json:"saleDate"`
	CashRegisterID *string         `json:"cashRegisterID"`
	AuditFields
}

// SaleItem maps to the sale_items table.
type SaleItem struct {
	SaleItemID string          `json:"saleItemID"`
	SaleID     string          `json:"saleID"`
	ItemKind   SaleItemKind    `json:"itemKind"`
	ItemID     string          `json:"itemID"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
	Position   int             `json:"position"`
}
