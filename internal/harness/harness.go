package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/tackle/internal/angler"
	"github.com/roach88/tackle/internal/store"
	"github.com/roach88/tackle/internal/testutil"
)

// Harness holds the state of one scenario run.
type Harness struct {
	dir     string
	clock   *testutil.StepClock
	logger  *slog.Logger
	strict  bool
	primary store.Store

	anglers map[string]*angler.Angler
	stores  map[string]store.Store // current store per angler
	opened  int
}

// Option configures a run.
type Option func(*Harness)

// WithLogger routes angler and store logs to logger. Runs are silent by
// default.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Run executes a scenario and returns the result.
//
// Each run gets its own temporary directory for SQLite files and a fresh
// step clock, so scenarios are isolated and reproducible.
func Run(ctx context.Context, scenario *Scenario, opts ...Option) (*Result, error) {
	dir, err := os.MkdirTemp("", "tackle-scenario-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scenario directory: %w", err)
	}
	defer os.RemoveAll(dir)

	h := &Harness{
		dir:     dir,
		clock:   testutil.NewStepClock(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		strict:  scenario.Strict,
		anglers: make(map[string]*angler.Angler),
		stores:  make(map[string]store.Store),
	}
	for _, opt := range opts {
		opt(h)
	}

	kind := scenario.Store
	if kind == "" {
		kind = StoreMemory
	}
	h.primary, err = h.openStore(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", kind, err)
	}

	result := NewResult()
	if err := h.executeSteps(ctx, scenario.Steps, result); err != nil {
		return nil, fmt.Errorf("failed to execute steps: %w", err)
	}

	for _, msg := range h.evaluate(ctx, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

// RunFile loads and runs the scenario at path.
func RunFile(ctx context.Context, path string, opts ...Option) (*Scenario, *Result, error) {
	scenario, err := LoadScenario(path)
	if err != nil {
		return nil, nil, err
	}
	result, err := Run(ctx, scenario, opts...)
	if err != nil {
		return scenario, nil, err
	}
	return scenario, result, nil
}

// openStore creates a store of the given kind. SQLite stores get their own
// file under the run directory.
func (h *Harness) openStore(ctx context.Context, kind string) (store.Store, error) {
	h.opened++
	switch kind {
	case StoreMemory:
		return store.NewMemoryStore(h.clock), nil
	case StoreSQLite:
		path := filepath.Join(h.dir, fmt.Sprintf("catches-%d.db", h.opened))
		return store.Open(ctx, store.Config{Backend: store.BackendSQLite, Path: path, Clock: h.clock})
	case StoreBroken:
		// A regular file where a directory is expected: every open fails.
		blocker := filepath.Join(h.dir, fmt.Sprintf("blocker-%d", h.opened))
		if err := os.WriteFile(blocker, nil, 0o644); err != nil {
			return nil, err
		}
		return store.NewSQLite(filepath.Join(blocker, "catches.db"), h.clock)
	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}

// angler returns the named angler, creating it on first use with the
// primary store.
func (h *Harness) angler(name string) *angler.Angler {
	if a, ok := h.anglers[name]; ok {
		return a
	}
	opts := []angler.Option{angler.WithLogger(h.logger)}
	if h.strict {
		opts = append(opts, angler.WithStrictStore())
	}
	a := angler.New(name, h.primary, opts...)
	h.anglers[name] = a
	h.stores[name] = h.primary
	return a
}

func (h *Harness) executeSteps(ctx context.Context, steps []Step, result *Result) error {
	for i, step := range steps {
		a := h.angler(step.Angler)
		ev := TraceEvent{Action: step.Action, Angler: step.Angler, Outcome: OutcomeOK}

		switch step.Action {
		case ActionStart:
			ev.Location = step.Location
			a.StartFishing(step.Location)

		case ActionLog:
			ev.Species = step.Species
			ev.Weight = step.Weight
			err := a.LogCatch(ctx, step.Species, step.Weight)
			switch {
			case err == nil:
			case errors.Is(err, angler.ErrNotFishing):
				ev.Outcome = OutcomeNotFishing
			default:
				ev.Outcome = OutcomeError
			}
			if step.Expect != "" && step.Expect != ev.Outcome {
				result.AddError(fmt.Sprintf("steps[%d]: log %s expected %s, got %s",
					i, step.Species, step.Expect, ev.Outcome))
			}

		case ActionEnd:
			a.EndFishing()

		case ActionSwapStore:
			ev.Store = step.Store
			st, err := h.openStore(ctx, step.Store)
			if err != nil {
				return fmt.Errorf("steps[%d]: %w", i, err)
			}
			a.SetStore(st)
			h.stores[step.Angler] = st

		default:
			return fmt.Errorf("steps[%d]: unknown action %q", i, step.Action)
		}

		result.AddTrace(ev)
	}
	return nil
}
