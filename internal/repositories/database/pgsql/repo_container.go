package pgsql

import (
	portsrepo "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:       newPgxProductRepository(dbPool),
		ComboRepo:         newPgxComboRepository(dbPool),
		SaleRepo:          newPgxSaleRepository(dbPool),
		StockMovementRepo: newPgxStockMovementRepository(dbPool),
		CashRegisterRepo:  newPgxCashRegisterRepository(dbPool),
		SupplierRepo:      newPgxSupplierRepository(dbPool),
	}
}
