package models

// Supplier maps to the suppliers table.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	TaxID      string `json:"taxID"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
