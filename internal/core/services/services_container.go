package services

import (
	portsrepo "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/platform/cache"
	"github.com/dmaldonadov/retail_backoffice_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, comboCache cache.ComboCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Catalog first since the expander reads through it
	container.CatalogSvc = NewCatalogService(repos.ProductRepo, repos.ComboRepo, comboCache)

	expander := NewComboExpanderService(container.CatalogSvc)

	container.StockLedgerSvc = NewStockLedgerService(repos.ProductRepo, repos.StockMovementRepo)
	container.CashRegisterSvc = NewCashRegisterService(repos.CashRegisterRepo)

	container.SaleSvc = NewSaleService(
		repos.SaleRepo,
		expander,
		container.StockLedgerSvc,
		container.CashRegisterSvc,
		Capabilities{CashDrawerEnabled: cfg.CashDrawerEnabled},
		SaleCommitOptions{
			MaxAttempts:  cfg.SaleCommitMaxAttempts,
			RetryBackoff: cfg.SaleCommitRetryBackoff,
			Timeout:      cfg.SaleCommitTimeout,
		},
	)

	container.SupplierSvc = NewSupplierService(repos.SupplierRepo)

	return container
}
