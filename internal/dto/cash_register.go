package dto

import (
	"time"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenRegisterRequest defines the data needed to open a register session.
type OpenRegisterRequest struct {
	OpeningAmount decimal.Decimal `json:"openingAmount" binding:"dgte0"`
	UserID        string          `json:"userID"`
}

// PostCashMovementRequest defines a manual income or expense entry.
type PostCashMovementRequest struct {
	Type     domain.CashMovementType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount   decimal.Decimal         `json:"amount" binding:"required,dgt0"`
	Category string                  `json:"category" binding:"required"`
	UserID   string                  `json:"userID"`
}

// CloseRegisterRequest defines the data needed to close a register session.
type CloseRegisterRequest struct {
	CountedAmount decimal.Decimal `json:"countedAmount" binding:"dgte0"`
	UserID        string          `json:"userID"`
}

// CashRegisterResponse defines the data returned for a register session.
type CashRegisterResponse struct {
	RegisterID     string                    `json:"registerID"`
	Status         domain.CashRegisterStatus `json:"status"`
	OpeningAmount  decimal.Decimal           `json:"openingAmount"`
	ClosingAmount  *decimal.Decimal          `json:"closingAmount,omitempty"`
	ExpectedAmount *decimal.Decimal          `json:"expectedAmount,omitempty"`
	Discrepancy    *decimal.Decimal          `json:"discrepancy,omitempty"`
	OpenedAt       time.Time                 `json:"openedAt"`
	ClosedAt       *time.Time                `json:"closedAt,omitempty"`
	CreatedBy      string                    `json:"createdBy"`
}

// ToCashRegisterResponse converts a domain.CashRegister to its DTO
func ToCashRegisterResponse(r *domain.CashRegister) CashRegisterResponse {
	return CashRegisterResponse{
		RegisterID:     r.RegisterID,
		Status:         r.Status,
		OpeningAmount:  r.OpeningAmount,
		ClosingAmount:  r.ClosingAmount,
		ExpectedAmount: r.ExpectedAmount,
		Discrepancy:    r.Discrepancy,
		OpenedAt:       r.OpenedAt,
		ClosedAt:       r.ClosedAt,
		CreatedBy:      r.CreatedBy,
	}
}

// CashMovementResponse defines the data returned for one cash movement.
type CashMovementResponse struct {
	MovementID  string                  `json:"movementID"`
	RegisterID  string                  `json:"registerID"`
	Type        domain.CashMovementType `json:"type"`
	Amount      decimal.Decimal         `json:"amount"`
	Category    string                  `json:"category"`
	ReferenceID *string                 `json:"referenceID,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
	CreatedBy   string                  `json:"createdBy"`
}

// ToCashMovementResponse converts a domain.CashMovement to its DTO
func ToCashMovementResponse(m *domain.CashMovement) CashMovementResponse {
	return CashMovementResponse{
		MovementID:  m.MovementID,
		RegisterID:  m.RegisterID,
		Type:        m.Type,
		Amount:      m.Amount,
		Category:    m.Category,
		ReferenceID: m.ReferenceID,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// ToListCashMovementResponse converts a slice of cash movements to DTOs
func ToListCashMovementResponse(movements []domain.CashMovement) []CashMovementResponse {
	res := make([]CashMovementResponse, len(movements))
	for i, m := range movements {
		res[i] = ToCashMovementResponse(&m)
	}
	return res
}

// ClosingReportResponse defines the reconciliation summary returned on close.
type ClosingReportResponse struct {
	RegisterID  string          `json:"registerID"`
	Expected    decimal.Decimal `json:"expected"`
	Counted     decimal.Decimal `json:"counted"`
	Discrepancy decimal.Decimal `json:"discrepancy"`
}

// ToClosingReportResponse converts a domain.ClosingReport to its DTO
func ToClosingReportResponse(r *domain.ClosingReport) ClosingReportResponse {
	return ClosingReportResponse{
		RegisterID:  r.RegisterID,
		Expected:    r.Expected,
		Counted:     r.Counted,
		Discrepancy: r.Discrepancy,
	}
}
