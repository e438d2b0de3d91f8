package store

import (
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"github.com/roach88/tackle/internal/clock"
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS catches (
		id             BIGSERIAL PRIMARY KEY,
		fisherman_name TEXT             NOT NULL,
		fish_species   TEXT             NOT NULL,
		weight         DOUBLE PRECISION NOT NULL,
		"timestamp"    TIMESTAMPTZ      DEFAULT now()
	)
`

// NewPostgres returns a Store backed by the Postgres database at dsn.
func NewPostgres(dsn string, clk clock.Clock) (*SQLStore, error) {
	if dsn == "" {
		return nil, errors.New("postgres backend requires a DSN")
	}

	d := dialect{
		backend: BackendPostgres,
		driver:  "pgx",
		schema:  []string{postgresSchema},
		insert: `
			INSERT INTO catches (fisherman_name, fish_species, weight, "timestamp")
			VALUES ($1, $2, $3, $4)
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
			WHERE fisherman_name = $1
			ORDER BY "timestamp" DESC, id DESC
		`,
		summary: `
			SELECT COUNT(*), SUM(weight)
			FROM catches
			WHERE fisherman_name = $1
		`,
		bindTime: func(t time.Time) any { return t },
	}

	return newSQLStore(d, dsn, clk), nil
}
