package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmalkov/cbr_rates_app/internal/apperrors"
	"github.com/kmalkov/cbr_rates_app/internal/core/domain"
	portsrepo "github.com/kmalkov/cbr_rates_app/internal/core/ports/repositories"
	"github.com/kmalkov/cbr_rates_app/internal/models"
	"github.com/kmalkov/cbr_rates_app/internal/utils/mapping"
)

var _ portsrepo.RateRepositoryWithTx = (*PgxRateRepository)(nil)

const rateColumns = "id, num_code, char_code, nominal, name, value, vunit_rate, date"

// PgxRateRepository implements the rate snapshot store using pgxpool.
type PgxRateRepository struct {
	BaseRepository
}

// NewPgxRateRepository creates a new PgxRateRepository.
func NewPgxRateRepository(pool *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// GetAll retrieves every rate carrying the newest date present in the store.
// Restricting to max(date) keeps the result consistent even if the table ever
// holds mixed dates after a partially-failed historical run.
func (r *PgxRateRepository) GetAll(ctx context.Context) ([]domain.Rate, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM rates
		WHERE date = (SELECT MAX(date) FROM rates)
		ORDER BY id;
	`, rateColumns)

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query rates: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	var modelRates []models.Rate
	for rows.Next() {
		m, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan rate: %v", apperrors.ErrPersistence, err)
		}
		modelRates = append(modelRates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating rates: %v", apperrors.ErrPersistence, err)
	}

	return mapping.ToDomainRates(modelRates), nil
}

// GetByNumCode retrieves the rate with the given ISO numeric code, preferring
// the most recent date when more than one row matches.
func (r *PgxRateRepository) GetByNumCode(ctx context.Context, numCode string) (*domain.Rate, error) {
	return r.getOne(ctx, "num_code", numCode)
}

// GetByCharCode retrieves the rate with the given ISO alpha code. The caller
// upper-cases and validates the code before it reaches the store.
func (r *PgxRateRepository) GetByCharCode(ctx context.Context, charCode string) (*domain.Rate, error) {
	return r.getOne(ctx, "char_code", charCode)
}

func (r *PgxRateRepository) getOne(ctx context.Context, column, code string) (*domain.Rate, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM rates
		WHERE %s = $1
		ORDER BY date DESC
		LIMIT 1;
	`, rateColumns, column)

	row := r.Pool.QueryRow(ctx, query, code)
	m, err := scanRate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find rate by %s %s: %v", apperrors.ErrPersistence, column, code, err)
	}

	rate := mapping.ToDomainRate(m)
	return &rate, nil
}

// SaveBatch upserts every record within a single transaction: a new id is
// inserted, an existing id has only value, vunit_rate and date overwritten.
// The descriptive fields stay frozen at first insert. Any failure rolls the
// whole batch back; no partial batch is ever visible.
func (r *PgxRateRepository) SaveBatch(ctx context.Context, rates []domain.Rate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	query := `
		INSERT INTO rates (id, num_code, char_code, nominal, name, value, vunit_rate, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			value = EXCLUDED.value,
			vunit_rate = EXCLUDED.vunit_rate,
			date = EXCLUDED.date;
	`

	for _, rate := range rates {
		m := mapping.ToModelRate(rate)
		if _, err := tx.Exec(ctx, query,
			m.ID,
			m.NumCode,
			m.CharCode,
			m.Nominal,
			m.Name,
			m.Value,
			m.VUnitRate,
			m.Date,
		); err != nil {
			return fmt.Errorf("%w: failed to upsert rate %s: %v", apperrors.ErrPersistence, m.ID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRate(row rowScanner) (models.Rate, error) {
	var m models.Rate
	err := row.Scan(
		&m.ID,
		&m.NumCode,
		&m.CharCode,
		&m.Nominal,
		&m.Name,
		&m.Value,
		&m.VUnitRate,
		&m.Date,
	)
	return m, err
}
