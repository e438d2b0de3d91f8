package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/tackle/internal/clock"
)

// Backend names accepted by Config.Backend.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// DefaultPath is the SQLite file used when Config.Path is empty.
const DefaultPath = "fishing.db"

// ErrUnknownBackend is returned by New for an unsupported Config.Backend.
var ErrUnknownBackend = errors.New("unknown store backend")

// Record is one durable catch. Records are never updated or deleted.
type Record struct {
	ID         int64     `json:"id"`
	Angler     string    `json:"angler"`
	Species    string    `json:"species"`
	Weight     float64   `json:"weight"`
	CapturedAt time.Time `json:"captured_at"`
}

// Summary aggregates the records of one angler.
type Summary struct {
	Count       int     `json:"count"`
	TotalWeight float64 `json:"total_weight"`
}

// Store is the strict catch store contract. Every failure is returned as an
// *Error; use Lenient for the log-and-default behaviour.
type Store interface {
	// Backend names the storage engine ("sqlite", "postgres", "memory").
	Backend() string

	// EnsureSchema creates the catches table if it does not exist.
	// It is idempotent.
	EnsureSchema(ctx context.Context) error

	// SaveCatch inserts one record and returns it with the store-assigned
	// id and capture time. Weight is stored as given.
	SaveCatch(ctx context.Context, angler, species string, weight float64) (Record, error)

	// AllCatches returns the records of angler, newest first. An empty angler
	// returns every record. The result is never nil.
	AllCatches(ctx context.Context, angler string) ([]Record, error)

	// CatchSummary returns count and total weight over exactly the records
	// of angler. Both are zero when the angler has no records.
	CatchSummary(ctx context.Context, angler string) (Summary, error)
}

// Config selects and configures a backend.
type Config struct {
	Backend string      // sqlite (default), postgres or memory
	Path    string      // SQLite database file; DefaultPath when empty
	DSN     string      // Postgres connection string
	Clock   clock.Clock // capture-time source; clock.Real when nil
}

// New constructs the configured backend without touching storage.
func New(cfg Config) (Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendSQLite:
		return NewSQLite(cfg.Path, cfg.Clock)
	case BackendPostgres:
		return NewPostgres(cfg.DSN, cfg.Clock)
	case BackendMemory:
		return NewMemoryStore(cfg.Clock), nil
	default:
		return nil, fmt.Errorf("%w: %q (want sqlite, postgres or memory)", ErrUnknownBackend, cfg.Backend)
	}
}

// Open constructs the configured backend and ensures its schema.
func Open(ctx context.Context, cfg Config) (Store, error) {
	st, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := st.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return st, nil
}

// NormalizeName trims surrounding space and applies Unicode NFC so that
// visually identical names map to the same records.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
