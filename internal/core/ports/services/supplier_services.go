package services

import (
	"context"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
)

// SupplierSvc defines supplier account operations
type SupplierSvc interface {
	// CreateSupplier registers a new supplier account.
	CreateSupplier(ctx context.Context, supplier domain.Supplier, userID string) (*domain.Supplier, error)

	// GetSupplierByID retrieves a supplier by ID.
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves a paginated list of active suppliers.
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

// SupplierSvcFacade combines all supplier service interfaces
type SupplierSvcFacade interface {
	SupplierSvc
}
