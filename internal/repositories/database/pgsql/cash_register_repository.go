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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const registerColumns = `register_id, status, opening_amount, closing_amount, expected_amount, discrepancy, opened_at, closed_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxCashRegisterRepository struct {
	BaseRepository
}

// newPgxCashRegisterRepository creates a new repository for register sessions.
func newPgxCashRegisterRepository(pool *pgxpool.Pool) portsrepo.CashRegisterRepositoryWithTx {
	return &PgxCashRegisterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashRegisterRepositoryWithTx = (*PgxCashRegisterRepository)(nil)

func scanRegister(row pgx.Row) (models.CashRegister, error) {
	var m models.CashRegister
	err := row.Scan(
		&m.RegisterID,
		&m.Status,
		&m.OpeningAmount,
		&m.ClosingAmount,
		&m.ExpectedAmount,
		&m.Discrepancy,
		&m.OpenedAt,
		&m.ClosedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// InsertRegister persists a new open register. A partial unique index on open
// status makes the store the arbiter of the single-open-register rule: the
// losing insert of a race comes back as a unique violation.
func (r *PgxCashRegisterRepository) InsertRegister(ctx context.Context, register domain.CashRegister) error {
	m := mapping.ToModelCashRegister(register)

	query := `
		INSERT INTO cash_registers (register_id, status, opening_amount, opened_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.RegisterID,
		m.Status,
		m.OpeningAmount,
		m.OpenedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: an open register already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert register %s: %w", m.RegisterID, err)
	}

	return nil
}

// FindRegisterByID retrieves a register by its ID.
func (r *PgxCashRegisterRepository) FindRegisterByID(ctx context.Context, registerID string) (*domain.CashRegister, error) {
	query := fmt.Sprintf(`SELECT %s FROM cash_registers WHERE register_id = $1;`, registerColumns)

	m, err := scanRegister(r.Pool.QueryRow(ctx, query, registerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find register by ID %s: %w", registerID, err)
	}

	d := mapping.ToDomainCashRegister(m)
	return &d, nil
}

// FindOpenRegister retrieves the currently open register, or (nil, nil) when
// none is open.
func (r *PgxCashRegisterRepository) FindOpenRegister(ctx context.Context) (*domain.CashRegister, error) {
	query := fmt.Sprintf(`SELECT %s FROM cash_registers WHERE status = 'OPEN';`, registerColumns)

	m, err := scanRegister(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open register: %w", err)
	}

	d := mapping.ToDomainCashRegister(m)
	return &d, nil
}

// FindRegisterByIDForUpdate locks a register row within the transaction.
func (r *PgxCashRegisterRepository) FindRegisterByIDForUpdate(ctx context.Context, tx pgx.Tx, registerID string) (*domain.CashRegister, error) {
	query := fmt.Sprintf(`SELECT %s FROM cash_registers WHERE register_id = $1 FOR UPDATE;`, registerColumns)

	m, err := scanRegister(tx.QueryRow(ctx, query, registerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock register %s: %w", registerID, err)
	}

	d := mapping.ToDomainCashRegister(m)
	return &d, nil
}

// FindOpenRegisterForUpdate locks the open register row, if any. Returns
// (nil, nil) when no register is open.
func (r *PgxCashRegisterRepository) FindOpenRegisterForUpdate(ctx context.Context, tx pgx.Tx) (*domain.CashRegister, error) {
	query := fmt.Sprintf(`SELECT %s FROM cash_registers WHERE status = 'OPEN' FOR UPDATE;`, registerColumns)

	m, err := scanRegister(tx.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock open register: %w", err)
	}

	d := mapping.ToDomainCashRegister(m)
	return &d, nil
}

const insertMovementQuery = `
	INSERT INTO cash_movements (movement_id, register_id, movement_type, amount, category, reference_id, created_at, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

// InsertMovementInTx appends a cash movement within the caller's transaction.
func (r *PgxCashRegisterRepository) InsertMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.CashMovement) error {
	m := mapping.ToModelCashMovement(movement)

	_, err := tx.Exec(ctx, insertMovementQuery,
		m.MovementID, m.RegisterID, m.Type, m.Amount, m.Category, m.ReferenceID, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cash movement %s: %w", m.MovementID, err)
	}
	return nil
}

// SumMovementsInTx totals income and expense movements for a register within
// the transaction.
func (r *PgxCashRegisterRepository) SumMovementsInTx(ctx context.Context, tx pgx.Tx, registerID string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE movement_type = 'INCOME'), 0),
			COALESCE(SUM(amount) FILTER (WHERE movement_type = 'EXPENSE'), 0)
		FROM cash_movements
		WHERE register_id = $1;
	`

	var income, expense decimal.Decimal
	if err := tx.QueryRow(ctx, query, registerID).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum cash movements for register %s: %w", registerID, err)
	}

	return income, expense, nil
}

// CloseRegisterInTx transitions a register to CLOSED with its reconciliation
// amounts. Only an open register can transition.
func (r *PgxCashRegisterRepository) CloseRegisterInTx(ctx context.Context, tx pgx.Tx, register domain.CashRegister) error {
	m := mapping.ToModelCashRegister(register)

	query := `
		UPDATE cash_registers
		SET status = $2, closing_amount = $3, expected_amount = $4, discrepancy = $5, closed_at = $6, last_updated_at = $7, last_updated_by = $8
		WHERE register_id = $1 AND status = 'OPEN';
	`

	cmdTag, err := tx.Exec(ctx, query,
		m.RegisterID,
		m.Status,
		m.ClosingAmount,
		m.ExpectedAmount,
		m.Discrepancy,
		m.ClosedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to close register %s: %w", m.RegisterID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: register %s is not open", apperrors.ErrConflict, m.RegisterID)
	}

	return nil
}

// ListMovementsByRegister retrieves all movements linked to a register, oldest
// first.
func (r *PgxCashRegisterRepository) ListMovementsByRegister(ctx context.Context, registerID string) ([]domain.CashMovement, error) {
	query := `
		SELECT movement_id, register_id, movement_type, amount, category, reference_id, created_at, created_by
		FROM cash_movements
		WHERE register_id = $1
		ORDER BY created_at;
	`

	rows, err := r.Pool.Query(ctx, query, registerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash movements for register %s: %w", registerID, err)
	}
	defer rows.Close()

	movementModels := []models.CashMovement{}
	for rows.Next() {
		var m models.CashMovement
		if err := rows.Scan(&m.MovementID, &m.RegisterID, &m.Type, &m.Amount, &m.Category, &m.ReferenceID, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan cash movement row: %w", err)
		}
		movementModels = append(movementModels, m)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating cash movement rows: %w", rows.Err())
	}

	return mapping.ToDomainCashMovementSlice(movementModels), nil
}
