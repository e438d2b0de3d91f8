package store

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/tackle/internal/testutil"
)

// backendFactory builds a fresh, schema-ready store for contract tests.
type backendFactory func(t *testing.T) Store

// contractBackends lists every backend the shared contract runs against.
// Postgres joins only when TACKLE_TEST_POSTGRES_DSN is set.
func contractBackends(t *testing.T) map[string]backendFactory {
	t.Helper()
	backends := map[string]backendFactory{
		BackendMemory: func(t *testing.T) Store {
			return NewMemoryStore(testutil.NewStepClock())
		},
		BackendSQLite: func(t *testing.T) Store {
			return createTestSQLite(t)
		},
	}
	if dsn := os.Getenv("TACKLE_TEST_POSTGRES_DSN"); dsn != "" {
		backends[BackendPostgres] = func(t *testing.T) Store {
			return createTestPostgres(t, dsn)
		}
	}
	return backends
}

// createTestSQLite creates a schema-ready SQLite store in a temp directory.
func createTestSQLite(t *testing.T) *SQLStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fishing.db")
	s, err := NewSQLite(path, testutil.NewStepClock())
	require.NoError(t, err)
	require.NoError(t, s.EnsureSchema(context.Background()))
	return s
}

// createTestPostgres creates a schema-ready Postgres store and empties the
// catches table before and after the test.
func createTestPostgres(t *testing.T, dsn string) *SQLStore {
	t.Helper()
	s, err := NewPostgres(dsn, testutil.NewStepClock())
	require.NoError(t, err)
	require.NoError(t, s.EnsureSchema(context.Background()))
	truncate := func() {
		db, err := sql.Open("pgx", dsn)
		require.NoError(t, err)
		defer db.Close()
		_, err = db.Exec("TRUNCATE catches RESTART IDENTITY")
		require.NoError(t, err)
	}
	truncate()
	t.Cleanup(truncate)
	return s
}

// rawSQLite opens a direct connection to the store's database file for
// assertions and fault injection.
func rawSQLite(t *testing.T, s *SQLStore) *sql.DB {
	t.Helper()
	db, err := sql.Open(sqliteDriver, s.dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// bufferLogger returns a logger writing text records into the returned buffer.
func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}
