package mapping

import (
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/dmaldonadov/retail_backoffice_app/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale (header only)
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:         d.SaleID,
		GrandTotal:     d.GrandTotal,
		PaymentMethod:  string(d.PaymentMethod),
		SaleDate:       d.SaleDate,
		CashRegisterID: d.CashRegisterID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale (header only)
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:         m.SaleID,
		GrandTotal:     m.GrandTotal,
		PaymentMethod:  domain.PaymentMethod(m.PaymentMethod),
		SaleDate:       m.SaleDate,
		CashRegisterID: m.CashRegisterID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSaleItem converts a domain SaleItem to a model SaleItem
func ToModelSaleItem(d domain.SaleItem) models.SaleItem {
	return models.SaleItem{
		SaleItemID: d.SaleItemID,
		SaleID:     d.SaleID,
		ItemKind:   models.SaleItemKind(d.ItemKind),
		ItemID:     d.ItemID,
		Quantity:   d.Quantity,
		UnitPrice:  d.UnitPrice,
		LineTotal:  d.LineTotal,
		Position:   d.Position,
	}
}

// ToDomainSaleItem converts a model SaleItem to a domain SaleItem
func ToDomainSaleItem(m models.SaleItem) domain.SaleItem {
	return domain.SaleItem{
		SaleItemID: m.SaleItemID,
		SaleID:     m.SaleID,
		ItemKind:   domain.SaleItemKind(m.ItemKind),
		ItemID:     m.ItemID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		LineTotal:  m.LineTotal,
		Position:   m.Position,
	}
}

// ToDomainSaleItemSlice converts a slice of model SaleItems to domain SaleItems
func ToDomainSaleItemSlice(ms []models.SaleItem) []domain.SaleItem {
	ds := make([]domain.SaleItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSaleItem(m)
	}
	return ds
}
