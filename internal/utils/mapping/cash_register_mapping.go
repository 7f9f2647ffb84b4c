package mapping

import (
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/dmaldonadov/retail_backoffice_app/internal/models"
)

// ToModelCashRegister converts a domain CashRegister to a model CashRegister
func ToModelCashRegister(d domain.CashRegister) models.CashRegister {
	return models.CashRegister{
		RegisterID:     d.RegisterID,
		Status:         string(d.Status),
		OpeningAmount:  d.OpeningAmount,
		ClosingAmount:  d.ClosingAmount,
		ExpectedAmount: d.ExpectedAmount,
		Discrepancy:    d.Discrepancy,
		OpenedAt:       d.OpenedAt,
		ClosedAt:       d.ClosedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashRegister converts a model CashRegister to a domain CashRegister
func ToDomainCashRegister(m models.CashRegister) domain.CashRegister {
	return domain.CashRegister{
		RegisterID:     m.RegisterID,
		Status:         domain.CashRegisterStatus(m.Status),
		OpeningAmount:  m.OpeningAmount,
		ClosingAmount:  m.ClosingAmount,
		ExpectedAmount: m.ExpectedAmount,
		Discrepancy:    m.Discrepancy,
		OpenedAt:       m.OpenedAt,
		ClosedAt:       m.ClosedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCashMovement converts a domain CashMovement to a model CashMovement
func ToModelCashMovement(d domain.CashMovement) models.CashMovement {
	return models.CashMovement{
		MovementID:  d.MovementID,
		RegisterID:  d.RegisterID,
		Type:        string(d.Type),
		Amount:      d.Amount,
		Category:    d.Category,
		ReferenceID: d.ReferenceID,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   d.CreatedBy,
	}
}

// ToDomainCashMovement converts a model CashMovement to a domain CashMovement
func ToDomainCashMovement(m models.CashMovement) domain.CashMovement {
	return domain.CashMovement{
		MovementID:  m.MovementID,
		RegisterID:  m.RegisterID,
		Type:        domain.CashMovementType(m.Type),
		Amount:      m.Amount,
		Category:    m.Category,
		ReferenceID: m.ReferenceID,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// ToDomainCashMovementSlice converts a slice of model CashMovements to domain
func ToDomainCashMovementSlice(ms []models.CashMovement) []domain.CashMovement {
	ds := make([]domain.CashMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashMovement(m)
	}
	return ds
}
