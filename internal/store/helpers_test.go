// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/migrations"
	"github.com/MKhiriev/go-task-keeper/models"
)

// newMockDB returns a *DB over sqlmock speaking the given dialect.
func newMockDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = conn.Close()
	})

	return newDB(sqlx.NewDb(conn, "sqlmock"), dialect, logger.Nop()), mock
}

func quoted(query string, _ []any, _ error) string {
	return regexp.QuoteMeta(query)
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sqliteUniqueError() error {
	return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
}

// newSQLiteDB opens a migrated SQLite database in a temp dir.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnect(ctx, config.DB{DSN: filepath.Join(t.TempDir(), "todo.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Equal(t, migrations.DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate(ctx))
	return db
}

func seedUser(t *testing.T, repo UserRepository, email, subjectID string) models.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), models.NewUser(email, "hash", subjectID, fixedNow))
	require.NoError(t, err)
	return user
}
