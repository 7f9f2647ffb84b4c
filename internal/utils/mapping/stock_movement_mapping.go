package mapping

import (
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/dmaldonadov/retail_backoffice_app/internal/models"
)

// ToModelStockMovement converts a domain StockMovement to a model StockMovement
func ToModelStockMovement(d domain.StockMovement) models.StockMovement {
	return models.StockMovement{
		MovementID:    d.MovementID,
		ProductID:     d.ProductID,
		Type:          string(d.Type),
		Delta:         d.Delta,
		PreviousStock: d.PreviousStock,
		NewStock:      d.NewStock,
		ReferenceID:   d.ReferenceID,
		Reason:        d.Reason,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainStockMovement converts a model StockMovement to a domain StockMovement
func ToDomainStockMovement(m models.StockMovement) domain.StockMovement {
	return domain.StockMovement{
		MovementID:    m.MovementID,
		ProductID:     m.ProductID,
		Type:          domain.StockMovementType(m.Type),
		Delta:         m.Delta,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		ReferenceID:   m.ReferenceID,
		Reason:        m.Reason,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainStockMovementSlice converts a slice of model StockMovements to domain
func ToDomainStockMovementSlice(ms []models.StockMovement) []domain.StockMovement {
	ds := make([]domain.StockMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockMovement(m)
	}
	return ds
}
