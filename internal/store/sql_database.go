// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/migrations"
)

const (
	pingAttempts = 3
	pingBackoff  = 200 * time.Millisecond
)

// DB wraps a sqlx connection pool together with everything that differs
// between the supported SQL dialects: the migration set, the placeholder
// format and the driver error classification.
type DB struct {
	*sqlx.DB
	dialect         string
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// NewConnect opens the database selected by cfg.DSN. DSNs starting with
// postgres:// or postgresql:// are opened with pgx; anything else is treated
// as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, ErrUnsupportedDSN
	}

	if IsPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// IsPostgresDSN reports whether dsn is a PostgreSQL URL.
func IsPostgresDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// newDB wraps an already opened *sqlx.DB. Used by the dialect constructors
// and by tests running on sqlmock.
func newDB(conn *sqlx.DB, dialect string, log *logger.Logger) *DB {
	var classifier ErrorClassifier = NewSQLiteErrorClassifier()
	if dialect == migrations.DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	return &DB{
		DB:              conn,
		dialect:         dialect,
		errorClassifier: classifier,
		logger:          log,
	}
}

// Dialect returns the migration dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB.DB, db.dialect)
}

// Ping verifies the connection is alive. Used by the health endpoint.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// builder returns a squirrel statement builder using the placeholder format
// of the dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// pingWithRetry pings the database, retrying errors the classifier marks as
// retryable.
func (db *DB) pingWithRetry(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}

		if db.errorClassifier.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).
			Str("func", "*DB.pingWithRetry").
			Int("attempt", attempt).
			Msg("database ping failed, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pingBackoff * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("database ping failed after %d attempts: %w", pingAttempts, err)
}

// execAffectingOne runs a single-row write and maps "no rows affected" to
// notFound.
func (db *DB) execAffectingOne(ctx context.Context, caller string, notFound error, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return notFound
	}

	return nil
}
