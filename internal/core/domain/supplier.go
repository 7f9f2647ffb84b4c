package domain

// Supplier is a goods supplier whose deliveries show up as INTAKE stock
// movements referencing the supplier.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	TaxID      string `json:"taxID"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
