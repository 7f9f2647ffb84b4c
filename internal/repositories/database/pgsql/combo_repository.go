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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxComboRepository struct {
	pool *pgxpool.Pool
}

// newPgxComboRepository creates a new repository for combo data.
func newPgxComboRepository(pool *pgxpool.Pool) portsrepo.ComboRepositoryFacade {
	return &PgxComboRepository{pool: pool}
}

var _ portsrepo.ComboRepositoryFacade = (*PgxComboRepository)(nil)

func (r *PgxComboRepository) findComboLines(ctx context.Context, comboIDs []string) (map[string][]models.ComboProduct, error) {
	query := `
		SELECT combo_id, product_id, quantity, price, position
		FROM combo_products
		WHERE combo_id = ANY($1)
		ORDER BY combo_id, position;
	`

	rows, err := r.pool.Query(ctx, query, comboIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query combo lines: %w", err)
	}
	defer rows.Close()

	linesMap := make(map[string][]models.ComboProduct)
	for rows.Next() {
		var line models.ComboProduct
		if err := rows.Scan(&line.ComboID, &line.ProductID, &line.Quantity, &line.Price, &line.Position); err != nil {
			return nil, fmt.Errorf("failed to scan combo line row: %w", err)
		}
		linesMap[line.ComboID] = append(linesMap[line.ComboID], line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating combo line rows: %w", err)
	}

	return linesMap, nil
}

// FindComboByID retrieves a combo and its constituent lines.
func (r *PgxComboRepository) FindComboByID(ctx context.Context, comboID string) (*domain.Combo, error) {
	query := `
		SELECT combo_id, name, price, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM combos
		WHERE combo_id = $1;
	`

	var m models.Combo
	err := r.pool.QueryRow(ctx, query, comboID).Scan(
		&m.ComboID,
		&m.Name,
		&m.Price,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find combo by ID %s: %w", comboID, err)
	}

	linesMap, err := r.findComboLines(ctx, []string{comboID})
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainCombo(m, linesMap[comboID])
	return &d, nil
}

// ListCombos retrieves a paginated list of active combos with their lines.
func (r *PgxComboRepository) ListCombos(ctx context.Context, limit int, offset int) ([]domain.Combo, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT combo_id, name, price, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM combos
		WHERE is_active = TRUE
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query combos: %w", err)
	}
	defer rows.Close()

	comboModels := []models.Combo{}
	comboIDs := []string{}
	for rows.Next() {
		var m models.Combo
		if err := rows.Scan(&m.ComboID, &m.Name, &m.Price, &m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan combo row: %w", err)
		}
		comboModels = append(comboModels, m)
		comboIDs = append(comboIDs, m.ComboID)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating combo rows: %w", rows.Err())
	}

	if len(comboModels) == 0 {
		return []domain.Combo{}, nil
	}

	linesMap, err := r.findComboLines(ctx, comboIDs)
	if err != nil {
		return nil, err
	}

	combos := make([]domain.Combo, len(comboModels))
	for i, m := range comboModels {
		combos[i] = mapping.ToDomainCombo(m, linesMap[m.ComboID])
	}

	return combos, nil
}
