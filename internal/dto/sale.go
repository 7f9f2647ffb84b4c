package dto

import (
	"time"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CommitSaleItemRequest defines one line of a sale to be committed.
type CommitSaleItemRequest struct {
	ItemKind  domain.SaleItemKind `json:"itemKind" binding:"required,oneof=PRODUCT COMBO"`
	ItemID    string              `json:"itemID" binding:"required"`
	Quantity  decimal.Decimal     `json:"quantity" binding:"required,dgt0"`
	UnitPrice decimal.Decimal     `json:"unitPrice" binding:"required,dgt0"`
}

// CommitSaleRequest defines the data needed to commit a sale.
type CommitSaleRequest struct {
	Items         []CommitSaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod domain.PaymentMethod    `json:"paymentMethod" binding:"required,oneof=CASH CARD TRANSFER"`
	SaleDate      *time.Time              `json:"saleDate"` // Optional, defaults to now
	UserID        string                  `json:"userID"`   // needed for audit fields
}

// SaleItemResponse defines the data returned for one sale line.
type SaleItemResponse struct {
	SaleItemID string              `json:"saleItemID"`
	ItemKind   domain.SaleItemKind `json:"itemKind"`
	ItemID     string              `json:"itemID"`
	Quantity   decimal.Decimal     `json:"quantity"`
	UnitPrice  decimal.Decimal     `json:"unitPrice"`
	LineTotal  decimal.Decimal     `json:"lineTotal"`
	Position   int                 `json:"position"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID         string               `json:"saleID"`
	Items          []SaleItemResponse   `json:"items"`
	GrandTotal     decimal.Decimal      `json:"grandTotal"`
	PaymentMethod  domain.PaymentMethod `json:"paymentMethod"`
	SaleDate       time.Time            `json:"saleDate"`
	CashRegisterID *string              `json:"cashRegisterID"`
	CreatedAt      time.Time            `json:"createdAt"`
	CreatedBy      string               `json:"createdBy"`
}

// ToSaleItemResponse converts a domain.SaleItem to SaleItemResponse DTO
func ToSaleItemResponse(item *domain.SaleItem) SaleItemResponse {
	return SaleItemResponse{
		SaleItemID: item.SaleItemID,
		ItemKind:   item.ItemKind,
		ItemID:     item.ItemID,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		LineTotal:  item.LineTotal,
		Position:   item.Position,
	}
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO
func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = ToSaleItemResponse(&item)
	}
	return SaleResponse{
		SaleID:         s.SaleID,
		Items:          items,
		GrandTotal:     s.GrandTotal,
		PaymentMethod:  s.PaymentMethod,
		SaleDate:       s.SaleDate,
		CashRegisterID: s.CashRegisterID,
		CreatedAt:      s.CreatedAt,
		CreatedBy:      s.CreatedBy,
	}
}

// ToListSaleResponse converts a slice of domain.Sale to response DTOs
func ToListSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i, s := range sales {
		res[i] = ToSaleResponse(&s)
	}
	return res
}

// ListSalesParams defines query parameters for listing sales.
type ListSalesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListSalesResponse wraps the list of sales with the pagination token.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}
