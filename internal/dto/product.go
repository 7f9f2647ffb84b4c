package dto

import (
	"time"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductResponse defines the data returned for a product.
// Mirrors domain.Product.
type ProductResponse struct {
	ProductID     string             `json:"productID"`
	Name          string             `json:"name"`
	Barcode       string             `json:"barcode"`
	Unit          domain.ProductUnit `json:"unit"`
	Price         decimal.Decimal    `json:"price"`
	Stock         decimal.Decimal    `json:"stock"`
	IsActive      bool               `json:"isActive"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Barcode:       p.Barcode,
		Unit:          p.Unit,
		Price:         p.Price,
		Stock:         p.Stock,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

// ToListProductResponse converts a slice of domain.Product to response DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListProductsResponse wraps the list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ComboLineResponse defines one constituent line of a combo.
type ComboLineResponse struct {
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Position  int             `json:"position"`
}

// ComboResponse defines the data returned for a combo.
type ComboResponse struct {
	ComboID  string              `json:"comboID"`
	Name     string              `json:"name"`
	Price    decimal.Decimal     `json:"price"`
	IsActive bool                `json:"isActive"`
	Products []ComboLineResponse `json:"products"`
}

// ToComboResponse converts a domain.Combo to ComboResponse DTO
func ToComboResponse(c *domain.Combo) ComboResponse {
	lines := make([]ComboLineResponse, len(c.Products))
	for i, cp := range c.Products {
		lines[i] = ComboLineResponse{
			ProductID: cp.ProductID,
			Quantity:  cp.Quantity,
			Price:     cp.Price,
			Position:  cp.Position,
		}
	}
	return ComboResponse{
		ComboID:  c.ComboID,
		Name:     c.Name,
		Price:    c.Price,
		IsActive: c.IsActive,
		Products: lines,
	}
}

// ToListComboResponse converts a slice of domain.Combo to response DTOs
func ToListComboResponse(combos []domain.Combo) []ComboResponse {
	res := make([]ComboResponse, len(combos))
	for i, c := range combos {
		res[i] = ToComboResponse(&c)
	}
	return res
}

// ListCombosResponse wraps the list of combos.
type ListCombosResponse struct {
	Combos []ComboResponse `json:"combos"`
}
