package models

import "github.com/shopspring/decimal"

// ProductUnit mirrors the products.unit column.
type ProductUnit string

const (
	UnitDiscrete ProductUnit = "DISCRETE"
	UnitWeight   ProductUnit = "WEIGHT"
	UnitVolume   ProductUnit = "VOLUME"
)

// Product maps to the products table.
type Product struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Barcode   string          `json:"barcode"`
	Unit      ProductUnit     `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	Stock     decimal.Decimal `json:"stock"`
	IsActive  bool            `json:"isActive"`
	Version   int64           `json:"version"`
	AuditFields
}
