package dto

import (
	"time"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AdjustStockRequest defines the data for a manual stock correction.
type AdjustStockRequest struct {
	Quantity      decimal.Decimal `json:"quantity" binding:"required"`
	Reason        string          `json:"reason" binding:"required"`
	AllowNegative bool            `json:"allowNegative"`
	UserID        string          `json:"userID"`
}

// StockIntakeRequest defines the data for registering received goods.
type StockIntakeRequest struct {
	Quantity   decimal.Decimal `json:"quantity" binding:"required,dgt0"`
	SupplierID *string         `json:"supplierID"`
	UserID     string          `json:"userID"`
}

// StockReturnRequest defines the data for registering returned goods.
type StockReturnRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required,dgt0"`
	SaleID   *string         `json:"saleID"`
	UserID   string          `json:"userID"`
}

// StockMovementResponse defines the data returned for one ledger entry.
type StockMovementResponse struct {
	MovementID    string                   `json:"movementID"`
	ProductID     string                   `json:"productID"`
	Type          domain.StockMovementType `json:"type"`
	Delta         decimal.Decimal          `json:"delta"`
	PreviousStock decimal.Decimal          `json:"previousStock"`
	NewStock      decimal.Decimal          `json:"newStock"`
	ReferenceID   *string                  `json:"referenceID"`
	Reason        string                   `json:"reason,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	CreatedBy     string                   `json:"createdBy"`
}

// ToStockMovementResponse converts a domain.StockMovement to its DTO
func ToStockMovementResponse(m *domain.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		MovementID:    m.MovementID,
		ProductID:     m.ProductID,
		Type:          m.Type,
		Delta:         m.Delta,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		ReferenceID:   m.ReferenceID,
		Reason:        m.Reason,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToListStockMovementResponse converts a slice of movements to DTOs
func ToListStockMovementResponse(movements []domain.StockMovement) []StockMovementResponse {
	res := make([]StockMovementResponse, len(movements))
	for i, m := range movements {
		res[i] = ToStockMovementResponse(&m)
	}
	return res
}

// ListStockMovementsParams defines query parameters for the movement history.
type ListStockMovementsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListStockMovementsResponse wraps the movement history with the pagination token.
type ListStockMovementsResponse struct {
	Movements []StockMovementResponse `json:"movements"`
	NextToken *string                 `json:"nextToken,omitempty"`
}
