package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/roach88/tackle/internal/clock"
)

// sqlOpen is swapped in tests to simulate connection failures.
var sqlOpen = sql.Open

// dialect holds the backend-specific SQL for SQLStore.
type dialect struct {
	backend string
	driver  string

	schema      []string
	insert      string // must return the new id
	selectAll   string
	selectByKey string
	summary     string

	// prepare runs before the connection is opened (e.g. creating the
	// database directory). May be nil.
	prepare func() error

	// bindTime converts a capture time into a driver argument.
	bindTime func(time.Time) any
}

// SQLStore is a database/sql backed Store. It opens the database for every
// operation and closes it before returning.
type SQLStore struct {
	dialect dialect
	dsn     string
	clock   clock.Clock
}

func newSQLStore(d dialect, dsn string, clk clock.Clock) *SQLStore {
	return &SQLStore{dialect: d, dsn: dsn, clock: clock.OrReal(clk)}
}

// Backend implements Store.
func (s *SQLStore) Backend() string {
	return s.dialect.backend
}

// withDB opens the database, runs fn and closes it again.
// Failures are wrapped as *Error of the given kind.
func (s *SQLStore) withDB(ctx context.Context, op string, kind Kind, fn func(*sql.DB) error) error {
	wrap := func(err error) error {
		return &Error{Kind: kind, Op: op, Backend: s.dialect.backend, Err: err}
	}

	db, err := sqlOpen(s.dialect.driver, s.dsn)
	if err != nil {
		return wrap(fmt.Errorf("open database: %w", err))
	}
	defer db.Close()

	db.SetMaxOpenConns(1)

	if err := fn(db); err != nil {
		return wrap(err)
	}
	return nil
}

// EnsureSchema implements Store.
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	if s.dialect.prepare != nil {
		if err := s.dialect.prepare(); err != nil {
			return &Error{Kind: KindInit, Op: "ensure schema", Backend: s.dialect.backend, Err: err}
		}
	}
	return s.withDB(ctx, "ensure schema", KindInit, func(db *sql.DB) error {
		for _, stmt := range s.dialect.schema {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("execute schema: %w", err)
			}
		}
		return nil
	})
}

// SaveCatch implements Store.
func (s *SQLStore) SaveCatch(ctx context.Context, angler, species string, weight float64) (Record, error) {
	rec := Record{
		Angler:     NormalizeName(angler),
		Species:    NormalizeName(species),
		Weight:     weight,
		CapturedAt: s.clock.Now().UTC(),
	}

	err := s.withDB(ctx, "save catch", KindWrite, func(db *sql.DB) error {
		row := db.QueryRowContext(ctx, s.dialect.insert,
			rec.Angler,
			rec.Species,
			rec.Weight,
			s.dialect.bindTime(rec.CapturedAt),
		)
		if err := row.Scan(&rec.ID); err != nil {
			return fmt.Errorf("insert catch: %w", err)
		}
		return nil
	})
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// AllCatches implements Store.
func (s *SQLStore) AllCatches(ctx context.Context, angler string) ([]Record, error) {
	records := []Record{}

	err := s.withDB(ctx, "read catches", KindRead, func(db *sql.DB) error {
		var (
			rows *sql.Rows
			err  error
		)
		if key := NormalizeName(angler); key != "" {
			rows, err = db.QueryContext(ctx, s.dialect.selectByKey, key)
		} else {
			rows, err = db.QueryContext(ctx, s.dialect.selectAll)
		}
		if err != nil {
			return fmt.Errorf("query catches: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			rec, err := scanRecord(rows)
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate catches: %w", err)
		}
		return nil
	})
	if err != nil {
		return []Record{}, err
	}
	return records, nil
}

// CatchSummary implements Store.
func (s *SQLStore) CatchSummary(ctx context.Context, angler string) (Summary, error) {
	var (
		count int64
		total sql.NullFloat64
	)

	err := s.withDB(ctx, "summarize catches", KindRead, func(db *sql.DB) error {
		row := db.QueryRowContext(ctx, s.dialect.summary, NormalizeName(angler))
		if err := row.Scan(&count, &total); err != nil {
			return fmt.Errorf("query summary: %w", err)
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Count: int(count)}
	if total.Valid {
		sum.TotalWeight = total.Float64
	}
	return sum, nil
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var (
		rec Record
		ts  any
	)
	if err := rows.Scan(&rec.ID, &rec.Angler, &rec.Species, &rec.Weight, &ts); err != nil {
		return Record{}, fmt.Errorf("scan catch: %w", err)
	}
	capturedAt, err := parseTimestamp(ts)
	if err != nil {
		return Record{}, fmt.Errorf("scan catch %d: %w", rec.ID, err)
	}
	rec.CapturedAt = capturedAt
	return rec, nil
}
