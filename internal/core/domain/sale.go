package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemKind distinguishes a plain product line from a combo line.
type SaleItemKind string

const (
	ItemProduct SaleItemKind = "PRODUCT"
	ItemCombo   SaleItemKind = "COMBO"
)

// PaymentMethod identifies how a sale was paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

// SaleItem is one pre-expansion line of a sale: either a plain product or a
// combo, at the quantity and unit price the customer was charged.
type SaleItem struct {
	SaleItemID string          `json:"saleItemID"`
	SaleID     string          `json:"saleID"`
	ItemKind   SaleItemKind    `json:"itemKind"`
	ItemID     string          `json:"itemID"` // Product or combo ID depending on kind
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	LineTotal  decimal.Decimal `json:"lineTotal"` // Quantity × UnitPrice
	Position   int             `json:"position"`  // Preserves basket ordering
}

// Sale is a committed sale. GrandTotal always equals the sum of LineTotal over
// the pre-expansion items. CashRegisterID is nil when no register was open at
// commit time; that is a normal sale, not an error.
type Sale struct {
	SaleID         string          `json:"saleID"`
	Items          []SaleItem      `json:"items"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	SaleDate       time.Time       `json:"saleDate"`
	CashRegisterID *string         `json:"cashRegisterID"`
	AuditFields
}
