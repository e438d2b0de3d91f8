package store

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/roach88/tackle/internal/clock"
)

//go:embed schema.sql
var sqliteSchema string

// NewSQLite returns a Store backed by the SQLite file at path (DefaultPath
// when empty). The file and its directory are created by EnsureSchema.
func NewSQLite(path string, clk clock.Clock) (*SQLStore, error) {
	if path == "" {
		path = DefaultPath
	}
	if path == ":memory:" {
		return nil, errors.New("sqlite in-memory databases do not survive per-operation connections; use the memory backend")
	}
	path = filepath.Clean(path)

	d := dialect{
		backend: BackendSQLite,
		driver:  sqliteDriver,
		schema:  []string{sqliteSchema},
		insert: `
			INSERT INTO catches (fisherman_name, fish_species, weight, "timestamp")
			VALUES (?, ?, ?, ?)
			RETURNING id
		`,
		selectAll: `
			SELECT id, fisherman_name, fish_species, weight, "timestamp"
			FROM catches
			ORDER BY "timestamp" DESC, id DESC
		`,
		selectByKey: `
			SELECT id, fisherman_name, fish_species, weight, "timestamp"
			FROM catches
			WHERE fisherman_name = ?
			ORDER BY "timestamp" DESC, id DESC
		`,
		summary: `
			SELECT COUNT(*), SUM(weight)
			FROM catches
			WHERE fisherman_name = ?
		`,
		prepare: func() error {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("create db directory: %w", err)
			}
			return nil
		},
		bindTime: formatSQLiteTime,
	}

	return newSQLStore(d, sqliteDSN(path), clk), nil
}
