package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-counters/internal/config"
	"github.com/MKhiriev/go-counters/internal/logger"
)

type Storages struct {
	CounterRepository CounterRepository

	db *DB
}

// NewStorages builds the repositories for the configured backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Backend {
	case config.BackendMemory, "":
		log.Info().Str("func", "NewStorages").Msg("using in-memory counter registry")
		return &Storages{CounterRepository: NewCounterRegistry()}, nil
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting sqlite: %w", err)
		}
		log.Info().Str("func", "NewStorages").Msg("using sqlite counter registry")
		return &Storages{
			CounterRepository: NewCounterSQLRepository(db, log),
			db:                db,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
