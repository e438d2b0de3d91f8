// Package angler runs a fishing session: it owns the session catch log and
// forwards every catch to the durable store.
package angler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/tackle/internal/catchlog"
	"github.com/roach88/tackle/internal/store"
)

// ErrNotFishing is returned by LogCatch when no session is active.
var ErrNotFishing = errors.New("angler is not fishing")

// Option configures an Angler.
type Option func(*Angler)

// WithLogger sets the operational logger. It is shared with the session
// log and the lenient store adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Angler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithOutput sets where narrative text (session start/end, summaries) is
// written. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(a *Angler) {
		if w != nil {
			a.out = w
		}
	}
}

// WithStrictStore makes store failures visible: LogCatch and CatchSummary
// return them instead of logging and substituting defaults.
func WithStrictStore() Option {
	return func(a *Angler) { a.strict = true }
}

// Angler is one person fishing. Not safe for concurrent use.
type Angler struct {
	name     string
	location string
	fishing  bool

	session *catchlog.Log
	store   store.Store
	lenient *store.Lenient
	strict  bool

	logger      *slog.Logger // scoped with the angler's name
	storeLogger *slog.Logger // unscoped; the store adapter names the angler itself
	out         io.Writer
}

// New creates an idle angler. st may be nil, in which case catches only
// reach the session log.
func New(name string, st store.Store, opts ...Option) *Angler {
	a := &Angler{
		name:   name,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		out:    io.Discard,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.storeLogger = a.logger
	a.logger = a.logger.With("angler", name)
	a.session = catchlog.New(a.logger)
	a.SetStore(st)
	return a
}

// SetStore replaces the durable store. Records already saved stay in the
// store they were written to; only later catches go to st.
func (a *Angler) SetStore(st store.Store) {
	a.store = st
	a.lenient = nil
	if st != nil {
		a.lenient = store.NewLenient(st, a.storeLogger)
		a.logger.Info("catch store attached", "backend", st.Backend())
	}
}

// Name returns the angler's name.
func (a *Angler) Name() string { return a.name }

// Location returns the current or last fishing location, "" if none yet.
func (a *Angler) Location() string { return a.location }

// IsFishing reports whether a session is active.
func (a *Angler) IsFishing() bool { return a.fishing }

// Session returns the session catch log. It keeps the last session's
// entries after EndFishing until the next StartFishing.
func (a *Angler) Session() *catchlog.Log { return a.session }

// StartFishing begins a session at location and clears the session log.
func (a *Angler) StartFishing(location string) {
	a.location = location
	a.fishing = true
	a.session.Clear()
	a.logger.Info("session started", "location", location)
	fmt.Fprintf(a.out, "%s starts fishing at %s\n", a.name, location)
}

// LogCatch records a catch in the session log and then in the store.
//
// On an idle angler it logs a warning, records nothing and returns
// ErrNotFishing. The session entry is kept even if the store write fails;
// the two are not transactional. Store failures are returned only in
// strict mode.
func (a *Angler) LogCatch(ctx context.Context, species string, weight float64) error {
	if !a.fishing {
		a.logger.Warn("catch ignored: not fishing", "species", species, "weight", weight)
		return ErrNotFishing
	}

	a.session.Add(species, weight)

	if a.store == nil {
		a.logger.Debug("no catch store attached; catch kept in session only", "species", species)
		return nil
	}
	if !a.strict {
		a.lenient.SaveCatch(ctx, a.name, species, weight)
		return nil
	}

	rec, err := a.store.SaveCatch(ctx, a.name, species, weight)
	if err != nil {
		return fmt.Errorf("log catch %s: %w", species, err)
	}
	a.logger.Info("catch saved", "id", rec.ID, "species", rec.Species, "weight", rec.Weight)
	return nil
}

// EndFishing ends the session and writes the session summary. The session
// log is left intact. Ending an idle angler only prints a notice.
func (a *Angler) EndFishing() {
	if !a.fishing {
		fmt.Fprintf(a.out, "%s is already ashore\n", a.name)
		return
	}
	a.fishing = false
	a.logger.Info("session ended",
		"location", a.location,
		"count", a.session.Count(),
		"total_weight", a.session.TotalWeight(),
	)
	fmt.Fprintf(a.out, "%s finishes fishing at %s\n", a.name, a.location)
	_ = a.session.WriteSummary(a.out)
}

// CatchSummary returns the durable totals for this angler across all
// sessions. Without a store it returns a zero Summary.
func (a *Angler) CatchSummary(ctx context.Context) (store.Summary, error) {
	if a.store == nil {
		return store.Summary{}, nil
	}
	if !a.strict {
		return a.lenient.CatchSummary(ctx, a.name), nil
	}
	return a.store.CatchSummary(ctx, a.name)
}

// Info renders the angler's current status.
func (a *Angler) Info() string {
	location := a.location
	if location == "" {
		location = "ashore"
	}
	status := "idle"
	if a.fishing {
		status = "fishing"
	}
	return fmt.Sprintf("Angler %s\n  Location: %s\n  Status: %s\n", a.name, location, status)
}

func (a *Angler) String() string {
	return fmt.Sprintf("Angler(name=%s, location=%s, fishing=%t)", a.name, a.location, a.fishing)
}
