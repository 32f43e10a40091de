package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/migrations"
)

// DB wraps the shared *sql.DB handle with the dialect it was opened for
// and the matching error classifier. All repositories embed it.
type DB struct {
	*sql.DB
	dialect         string
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// Migrate applies pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose dialect this connection was opened with.
func (db *DB) Dialect() string {
	return db.dialect
}

// SizeBytes reports the on-disk footprint of the queue database: page
// count times page size for SQLite, pg_database_size for PostgreSQL.
func (db *DB) SizeBytes(ctx context.Context) (int64, error) {
	query := databaseSizePostgres
	if db.dialect == migrations.DialectSQLite {
		query = databaseSizeSQLite
	}

	var size int64
	if err := db.QueryRowContext(ctx, query).Scan(&size); err != nil {
		return 0, fmt.Errorf("failed to scan database size: %w", err)
	}

	return size, nil
}

// Vacuum reclaims space freed by delivered actions. SQLite only: on
// PostgreSQL autovacuum owns this and a manual VACUUM from the agent
// would need elevated rights.
func (db *DB) Vacuum(ctx context.Context) error {
	if db.dialect != migrations.DialectSQLite {
		return nil
	}

	if _, err := db.ExecContext(ctx, "VACUUM;"); err != nil {
		return fmt.Errorf("failed to vacuum queue database: %w", err)
	}

	return nil
}

// storageError folds the dialect's storage sentinel into err, so callers can
// errors.Is against [ErrStorageFull] and [ErrStorageUnavailable] without
// knowing which driver produced the failure.
func (db *DB) storageError(err error) error {
	if err == nil {
		return nil
	}

	if sentinel := db.errorClassifier.Sentinel(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	return err
}

// Classifier returns the driver-specific error classifier.
func (db *DB) Classifier() ErrorClassifier {
	return db.errorClassifier
}

// Connect opens the queue database selected by the DSN scheme: a
// "postgres://" or "postgresql://" DSN connects a fixed floor terminal
// to its station-local server, anything else is treated as a SQLite
// file path on the device itself.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}
