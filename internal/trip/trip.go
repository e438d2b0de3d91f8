// Package trip models one fishing expedition: its plan, its lifecycle and
// the plan files it is loaded from.
package trip

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/tackle/internal/clock"
)

var (
	ErrAlreadyActive = errors.New("trip already started")
	ErrNotActive     = errors.New("trip is not active")
)

// IDGenerator produces trip ids.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 trip ids.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Option configures a Trip.
type Option func(*Trip)

// WithIDGenerator overrides the UUIDv7 id source.
func WithIDGenerator(g IDGenerator) Option {
	return func(t *Trip) {
		if g != nil {
			t.ids = g
		}
	}
}

// Trip is a planned, running or finished expedition.
type Trip struct {
	ID   string
	Plan Plan

	StartedAt time.Time
	EndedAt   time.Time
	Active    bool

	clock clock.Clock
	ids   IDGenerator
}

// New creates a trip that has not started yet.
func New(plan Plan, clk clock.Clock, opts ...Option) *Trip {
	t := &Trip{
		Plan:  plan,
		clock: clock.OrReal(clk),
		ids:   UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.ID = t.ids.Generate()
	return t
}

// Start marks the trip active and records the start time.
func (t *Trip) Start() error {
	if t.Active {
		return ErrAlreadyActive
	}
	t.Active = true
	t.StartedAt = t.clock.Now()
	t.EndedAt = time.Time{}
	return nil
}

// End marks the trip finished and records the end time.
func (t *Trip) End() error {
	if !t.Active {
		return ErrNotActive
	}
	t.Active = false
	t.EndedAt = t.clock.Now()
	return nil
}

// Duration is zero before Start, the elapsed time while active, and the
// start-to-end span once finished.
func (t *Trip) Duration() time.Duration {
	switch {
	case t.StartedAt.IsZero():
		return 0
	case t.Active:
		return t.clock.Now().Sub(t.StartedAt)
	default:
		return t.EndedAt.Sub(t.StartedAt)
	}
}

// Status is "planned", "active" or "finished".
func (t *Trip) Status() string {
	switch {
	case t.Active:
		return "active"
	case !t.EndedAt.IsZero():
		return "finished"
	default:
		return "planned"
	}
}

// PlanText renders the trip plan.
func (t *Trip) PlanText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fishing plan %s\n", t.ID)
	fmt.Fprintf(&b, "  Location: %s\n", t.Plan.Location)
	fmt.Fprintf(&b, "  Organizer: %s\n", t.Plan.Organizer)
	if len(t.Plan.Participants) > 0 {
		fmt.Fprintf(&b, "  Participants: %s\n", strings.Join(t.Plan.Participants, ", "))
	}
	if t.Plan.DepthMap != "" {
		fmt.Fprintf(&b, "  Depth map: %s\n", t.Plan.DepthMap)
	}
	if len(t.Plan.Spots) > 0 {
		fmt.Fprintf(&b, "  Spots: %s\n", strings.Join(t.Plan.Spots, ", "))
	}
	fmt.Fprintf(&b, "  Status: %s\n", t.Status())
	return b.String()
}

// WriteEnd renders the closing line of a finished trip.
func (t *Trip) WriteEnd(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Trip to %s finished\n  Duration: %.0f minutes\n",
		t.Plan.Location, t.Duration().Minutes())
	return err
}

func (t *Trip) String() string {
	return fmt.Sprintf("Trip(location=%s, organizer=%s, active=%t)", t.Plan.Location, t.Plan.Organizer, t.Active)
}
