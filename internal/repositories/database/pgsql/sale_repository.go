package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmaldonadov/retail_backoffice_app/internal/apperrors"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	portsrepo "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/repositories"
	"github.com/dmaldonadov/retail_backoffice_app/internal/models"
	"github.com/dmaldonadov/retail_backoffice_app/internal/utils/mapping"
	"github.com/dmaldonadov/retail_backoffice_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sale data.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryWithTx {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryWithTx = (*PgxSaleRepository)(nil)

// InsertSaleInTx persists a sale header and its items within the caller's
// transaction.
func (r *PgxSaleRepository) InsertSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale, items []domain.SaleItem) error {
	modelSale := mapping.ToModelSale(sale)

	headerQuery := `
		INSERT INTO sales (sale_id, grand_total, payment_method, sale_date, cash_register_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := tx.Exec(ctx, headerQuery,
		modelSale.SaleID,
		modelSale.GrandTotal,
		modelSale.PaymentMethod,
		modelSale.SaleDate,
		modelSale.CashRegisterID,
		modelSale.CreatedAt,
		modelSale.CreatedBy,
		modelSale.LastUpdatedAt,
		modelSale.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: sale with ID %s already exists", apperrors.ErrDuplicate, modelSale.SaleID)
		}
		return fmt.Errorf("failed to insert sale %s: %w", modelSale.SaleID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO sale_items (sale_item_id, sale_id, item_kind, item_id, quantity, unit_price, line_total, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, item := range items {
		modelItem := mapping.ToModelSaleItem(item)
		batch.Queue(itemQuery,
			modelItem.SaleItemID,
			modelItem.SaleID,
			modelItem.ItemKind,
			modelItem.ItemID,
			modelItem.Quantity,
			modelItem.UnitPrice,
			modelItem.LineTotal,
			modelItem.Position,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert items for sale %s: %w", modelSale.SaleID, err)
	}

	return nil
}

// FindSaleByID retrieves a sale header and its items.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `
		SELECT sale_id, grand_total, payment_method, sale_date, cash_register_id, created_at, created_by, last_updated_at, last_updated_by
		FROM sales
		WHERE sale_id = $1;
	`

	var m models.Sale
	err := r.Pool.QueryRow(ctx, query, saleID).Scan(
		&m.SaleID,
		&m.GrandTotal,
		&m.PaymentMethod,
		&m.SaleDate,
		&m.CashRegisterID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}

	itemsQuery := `
		SELECT sale_item_id, sale_id, item_kind, item_id, quantity, unit_price, line_total, position
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY position;
	`

	rows, err := r.Pool.Query(ctx, itemsQuery, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for sale %s: %w", saleID, err)
	}
	defer rows.Close()

	itemModels := []models.SaleItem{}
	for rows.Next() {
		var item models.SaleItem
		if err := rows.Scan(&item.SaleItemID, &item.SaleID, &item.ItemKind, &item.ItemID, &item.Quantity, &item.UnitPrice, &item.LineTotal, &item.Position); err != nil {
			return nil, fmt.Errorf("failed to scan sale item row: %w", err)
		}
		itemModels = append(itemModels, item)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale item rows: %w", rows.Err())
	}

	sale := mapping.ToDomainSale(m)
	sale.Items = mapping.ToDomainSaleItemSlice(itemModels)
	return &sale, nil
}

// ListSales retrieves a paginated list of sale headers, newest first, using
// token-based pagination on (sale_date, created_at). Items are not populated.
func (r *PgxSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	baseQuery := `
		SELECT sale_id, grand_total, payment_method, sale_date, cash_register_id, created_at, created_by, last_updated_at, last_updated_by
		FROM sales
	`
	orderClause := ` ORDER BY sale_date DESC, created_at DESC LIMIT $1`

	var rows pgx.Rows
	var err error
	if nextToken != nil && *nextToken != "" {
		saleDate, createdAt, tokenErr := pagination.DecodeToken(*nextToken)
		if tokenErr != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, tokenErr.Error())
		}
		query := baseQuery + ` WHERE (sale_date, created_at) < ($2, $3)` + orderClause
		// Fetch one extra row to know whether another page exists.
		rows, err = r.Pool.Query(ctx, query, limit+1, saleDate, createdAt)
	} else {
		rows, err = r.Pool.Query(ctx, baseQuery+orderClause, limit+1)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		var m models.Sale
		if err := rows.Scan(&m.SaleID, &m.GrandTotal, &m.PaymentMethod, &m.SaleDate, &m.CashRegisterID, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, mapping.ToDomainSale(m))
	}

	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating sale rows: %w", rows.Err())
	}

	var token *string
	if len(sales) > limit {
		sales = sales[:limit]
		last := sales[len(sales)-1]
		t := pagination.EncodeToken(last.SaleDate, last.CreatedAt)
		token = &t
	}

	return sales, token, nil
}
