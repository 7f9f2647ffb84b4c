package mapping

import (
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/dmaldonadov/retail_backoffice_app/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		Name:        d.Name,
		Barcode:     d.Barcode,
		Unit:        models.ProductUnit(d.Unit),
		Price:       d.Price,
		Stock:       d.Stock,
		IsActive:    d.IsActive,
		Version:     d.Version,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		Name:        m.Name,
		Barcode:     m.Barcode,
		Unit:        domain.ProductUnit(m.Unit),
		Price:       m.Price,
		Stock:       m.Stock,
		IsActive:    m.IsActive,
		Version:     m.Version,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCombo converts a model Combo and its lines to a domain Combo
func ToDomainCombo(m models.Combo, lines []models.ComboProduct) domain.Combo {
	products := make([]domain.ComboProduct, len(lines))
	for i, line := range lines {
		products[i] = domain.ComboProduct{
			ComboID:   line.ComboID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Position:  line.Position,
		}
	}
	return domain.Combo{
		ComboID:     m.ComboID,
		Name:        m.Name,
		Price:       m.Price,
		IsActive:    m.IsActive,
		Products:    products,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
