package store

import (
	"context"
	"io"
	"log/slog"
)

// Lenient wraps a Store with the "log and continue" policy: failures are
// logged and replaced by benign defaults (no-op, empty slice, zero summary).
// No error crosses this boundary.
type Lenient struct {
	store  Store
	logger *slog.Logger
}

// NewLenient wraps st. A nil logger discards.
func NewLenient(st Store, logger *slog.Logger) *Lenient {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Lenient{store: st, logger: logger}
}

// OpenLenient builds the configured backend and ensures its schema. An init
// failure is logged and the adapter is still returned; later operations
// fail, are logged, and return defaults.
func OpenLenient(ctx context.Context, cfg Config, logger *slog.Logger) *Lenient {
	l := NewLenient(nil, logger)

	st, err := New(cfg)
	if err != nil {
		l.logger.Error("catch store unavailable", "backend", cfg.Backend, "error", err)
		l.store = &unavailableStore{backend: cfg.Backend, err: err}
		return l
	}
	l.store = st

	if err := st.EnsureSchema(ctx); err != nil {
		l.logger.Error("catch store schema failed", "backend", st.Backend(), "error", err)
		return l
	}
	l.logger.Info("catch store ready", "backend", st.Backend())
	return l
}

// Store returns the wrapped strict store.
func (l *Lenient) Store() Store {
	return l.store
}

// SaveCatch stores a catch. Failures are logged and otherwise ignored.
func (l *Lenient) SaveCatch(ctx context.Context, angler, species string, weight float64) {
	rec, err := l.store.SaveCatch(ctx, angler, species, weight)
	if err != nil {
		l.logger.Error("save catch failed",
			"angler", angler,
			"species", species,
			"weight", weight,
			"error", err,
		)
		return
	}
	l.logger.Info("catch saved",
		"id", rec.ID,
		"angler", rec.Angler,
		"species", rec.Species,
		"weight", rec.Weight,
	)
}

// AllCatches returns the matching records, or an empty slice on failure.
func (l *Lenient) AllCatches(ctx context.Context, angler string) []Record {
	records, err := l.store.AllCatches(ctx, angler)
	if err != nil {
		l.logger.Error("read catches failed", "angler", angler, "error", err)
		return []Record{}
	}
	if records == nil {
		return []Record{}
	}
	return records
}

// CatchSummary returns the angler's aggregate, or a zero Summary on failure.
func (l *Lenient) CatchSummary(ctx context.Context, angler string) Summary {
	sum, err := l.store.CatchSummary(ctx, angler)
	if err != nil {
		l.logger.Error("summarize catches failed", "angler", angler, "error", err)
		return Summary{}
	}
	return sum
}

// unavailableStore stands in for a backend that could not be constructed.
type unavailableStore struct {
	backend string
	err     error
}

func (u *unavailableStore) fail(op string, kind Kind) error {
	return &Error{Kind: kind, Op: op, Backend: u.backend, Err: u.err}
}

func (u *unavailableStore) Backend() string { return u.backend }

func (u *unavailableStore) EnsureSchema(context.Context) error {
	return u.fail("ensure schema", KindInit)
}

func (u *unavailableStore) SaveCatch(context.Context, string, string, float64) (Record, error) {
	return Record{}, u.fail("save catch", KindWrite)
}

func (u *unavailableStore) AllCatches(context.Context, string) ([]Record, error) {
	return []Record{}, u.fail("read catches", KindRead)
}

func (u *unavailableStore) CatchSummary(context.Context, string) (Summary, error) {
	return Summary{}, u.fail("summarize catches", KindRead)
}
