package store

import (
	"database/sql"

	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
