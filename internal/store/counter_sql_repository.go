package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/models"
)

// counterSQLRepository is the SQLite-backed implementation of
// [CounterRepository]. Every operation is a single statement, so atomicity
// comes from the database rather than from a Go lock.
type counterSQLRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCounterSQLRepository constructs a [CounterRepository] over db. The
// counters table must already exist (see [DB.Migrate]).
func NewCounterSQLRepository(db *DB, logger *logger.Logger) CounterRepository {
	logger.Debug().Msg("creating counter sql repository")
	return &counterSQLRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCounter inserts name with value 0.
//
// Error handling:
//   - no rows affected (conflict on name) → [ErrCounterAlreadyExists].
//   - driver-level error → wrapped [ErrExecutingStatement].
func (r *counterSQLRepository) CreateCounter(ctx context.Context, name string) (models.Counter, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCounterQuery(name)
	if err != nil {
		log.Err(err).Str("func", "*counterSQLRepository.CreateCounter").Msg("error building query")
		return models.Counter{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*counterSQLRepository.CreateCounter").Msg("error inserting counter")
		return models.Counter{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Counter{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Counter{}, ErrCounterAlreadyExists
	}

	return models.Counter{Name: name, Value: 0}, nil
}

func (r *counterSQLRepository) GetCounter(ctx context.Context, name string) (models.Counter, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCounterQuery(name)
	if err != nil {
		log.Err(err).Str("func", "*counterSQLRepository.GetCounter").Msg("error building query")
		return models.Counter{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanCounter(ctx, name, query, args, "*counterSQLRepository.GetCounter")
}

func (r *counterSQLRepository) IncrementCounter(ctx context.Context, name string) (models.Counter, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildIncrementCounterQuery(name)
	if err != nil {
		log.Err(err).Str("func", "*counterSQLRepository.IncrementCounter").Msg("error building query")
		return models.Counter{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanCounter(ctx, name, query, args, "*counterSQLRepository.IncrementCounter")
}

func (r *counterSQLRepository) DeleteCounter(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCounterQuery(name)
	if err != nil {
		log.Err(err).Str("func", "*counterSQLRepository.DeleteCounter").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*counterSQLRepository.DeleteCounter").Msg("error deleting counter")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCounterNotFound
	}

	return nil
}

// scanCounter runs a query returning a single value column for name.
func (r *counterSQLRepository) scanCounter(ctx context.Context, name, query string, args []any, fn string) (models.Counter, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error executing query")
		return models.Counter{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	counter := models.Counter{Name: name}
	if err := row.Scan(&counter.Value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Counter{}, ErrCounterNotFound
		}
		log.Err(err).Str("func", fn).Msg("error scanning row")
		return models.Counter{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return counter, nil
}
