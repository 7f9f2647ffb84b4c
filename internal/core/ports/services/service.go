package services

// ServiceContainer holds all service interfaces for handler wiring
type ServiceContainer struct {
	CatalogSvc      CatalogSvcFacade
	StockLedgerSvc  StockLedgerSvc
	CashRegisterSvc CashRegisterSvcFacade
	SaleSvc         SaleSvcFacade
	SupplierSvc     SupplierSvcFacade
}
