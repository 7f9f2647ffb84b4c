package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmaldonadov/retail_backoffice_app/internal/apperrors"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	portsrepo "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/repositories"
	"github.com/dmaldonadov/retail_backoffice_app/internal/models"
	"github.com/dmaldonadov/retail_backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const productColumns = `product_id, name, barcode, unit, price, stock, is_active, version, created_at, created_by, last_updated_at, last_updated_by`

type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// newPgxProductRepository creates a new repository for product data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{pool: pool}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.Barcode,
		&m.Unit,
		&m.Price,
		&m.Stock,
		&m.IsActive,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE product_id = $1;`, productColumns)

	m, err := scanProduct(r.pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}

	d := mapping.ToDomainProduct(m)
	return &d, nil
}

// FindProductsByIDs retrieves multiple products by their IDs. IDs that do not
// exist are simply absent from the returned map.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM products WHERE product_id = ANY($1);`, productColumns)

	rows, err := r.pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	productsMap := make(map[string]domain.Product)
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row during batch fetch: %w", err)
		}
		productsMap[m.ProductID] = mapping.ToDomainProduct(m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows during batch fetch: %w", err)
	}

	return productsMap, nil
}

// ListProducts retrieves a paginated list of active products.
func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE is_active = TRUE
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`, productColumns)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, mapping.ToDomainProduct(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}

	return products, nil
}

// FindProductsByIDsForUpdate retrieves multiple products by IDs and locks the
// rows for update. Rows are locked in product_id order so concurrent sales
// acquire locks in the same sequence. Must be called within a transaction.
func (r *PgxProductRepository) FindProductsByIDsForUpdate(ctx context.Context, tx pgx.Tx, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE product_id = ANY($1)
		ORDER BY product_id
		FOR UPDATE;
	`, productColumns)

	rows, err := tx.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products for update: %w", err)
	}
	defer rows.Close()

	productsMap := make(map[string]domain.Product)
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked product row: %w", err)
		}
		productsMap[m.ProductID] = mapping.ToDomainProduct(m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked product rows: %w", err)
	}

	return productsMap, nil
}

// UpdateProductStockInTx writes a new stock level guarded by the version read
// at lock time. Zero rows affected means another writer got there first and
// the caller should retry the whole transaction.
func (r *PgxProductRepository) UpdateProductStockInTx(ctx context.Context, tx pgx.Tx, productID string, newStock decimal.Decimal, expectedVersion int64, userID string, now time.Time) error {
	query := `
		UPDATE products
		SET stock = $2, version = version + 1, last_updated_at = $3, last_updated_by = $4
		WHERE product_id = $1 AND version = $5;
	`

	cmdTag, err := tx.Exec(ctx, query, productID, newStock, now, userID, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update stock for product %s: %w", productID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s was modified concurrently", apperrors.ErrConflict, productID)
	}

	return nil
}
