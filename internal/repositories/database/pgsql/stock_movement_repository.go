package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/dmaldonadov/retail_backoffice_app/internal/apperrors"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	portsrepo "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/repositories"
	"github.com/dmaldonadov/retail_backoffice_app/internal/models"
	"github.com/dmaldonadov/retail_backoffice_app/internal/utils/mapping"
	"github.com/dmaldonadov/retail_backoffice_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStockMovementRepository struct {
	BaseRepository
}

// newPgxStockMovementRepository creates a new repository for the stock ledger.
func newPgxStockMovementRepository(pool *pgxpool.Pool) portsrepo.StockMovementRepositoryWithTx {
	return &PgxStockMovementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StockMovementRepositoryWithTx = (*PgxStockMovementRepository)(nil)

// InsertMovementsInTx appends ledger rows within the caller's transaction.
// The table has no update or delete path.
func (r *PgxStockMovementRepository) InsertMovementsInTx(ctx context.Context, tx pgx.Tx, movements []domain.StockMovement) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO stock_movements (movement_id, product_id, movement_type, delta, previous_stock, new_stock, reference_id, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, movement := range movements {
		m := mapping.ToModelStockMovement(movement)
		batch.Queue(query,
			m.MovementID,
			m.ProductID,
			m.Type,
			m.Delta,
			m.PreviousStock,
			m.NewStock,
			m.ReferenceID,
			m.Reason,
			m.CreatedAt,
			m.CreatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert stock movements: %w", err)
	}

	return nil
}

// ListMovementsByProduct retrieves ledger rows for one product, newest first,
// using token-based pagination on (created_at, movement_id).
func (r *PgxStockMovementRepository) ListMovementsByProduct(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.StockMovement, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	baseQuery := `
		SELECT movement_id, product_id, movement_type, delta, previous_stock, new_stock, reference_id, reason, created_at, created_by
		FROM stock_movements
		WHERE product_id = $1
	`
	orderClause := ` ORDER BY created_at DESC, movement_id DESC LIMIT $2`

	var rows pgx.Rows
	var err error
	if nextToken != nil && *nextToken != "" {
		fields, tokenErr := pagination.DecodeMultiFieldToken(*nextToken)
		if tokenErr != nil || len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		createdAt, parseErr := time.Parse(time.RFC3339Nano, fields[0])
		if parseErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query := baseQuery + ` AND (created_at, movement_id) < ($3, $4)` + orderClause
		rows, err = r.Pool.Query(ctx, query, productID, limit+1, createdAt, fields[1])
	} else {
		rows, err = r.Pool.Query(ctx, baseQuery+orderClause, productID, limit+1)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query stock movements for product %s: %w", productID, err)
	}
	defer rows.Close()

	movementModels := []models.StockMovement{}
	for rows.Next() {
		var m models.StockMovement
		if err := rows.Scan(&m.MovementID, &m.ProductID, &m.Type, &m.Delta, &m.PreviousStock, &m.NewStock, &m.ReferenceID, &m.Reason, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, nil, fmt.Errorf("failed to scan stock movement row: %w", err)
		}
		movementModels = append(movementModels, m)
	}

	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating stock movement rows: %w", rows.Err())
	}

	var token *string
	if len(movementModels) > limit {
		movementModels = movementModels[:limit]
		last := movementModels[len(movementModels)-1]
		t := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.MovementID)
		token = &t
	}

	return mapping.ToDomainStockMovementSlice(movementModels), token, nil
}
