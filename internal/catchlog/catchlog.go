// Package catchlog keeps the in-memory record of catches for one fishing
// session.
//
// A Log is owned by a single angler and lives only as long as the session:
// it is cleared when the next session starts and is never persisted on its
// own. Durable history belongs to the store package.
//
// Every mutation is reported to the configured slog.Logger. Logging is
// presentation only; a broken handler never changes what the log holds.
package catchlog

import (
	"fmt"
	"io"
	"log/slog"
)

// Entry is one catch within a session.
type Entry struct {
	Species string  `json:"species"`
	Weight  float64 `json:"weight"`
}

// Log is an append-only, ordered list of session catches.
//
// Log is not safe for concurrent use. It must not be shared across sessions
// of different anglers.
type Log struct {
	entries []Entry
	logger  *slog.Logger
}

// New creates an empty log that reports to logger. A nil logger discards.
func New(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Log{logger: logger}
}

// Add appends a catch. Weights are accepted as given, including zero and
// negative values.
func (l *Log) Add(species string, weight float64) {
	l.entries = append(l.entries, Entry{Species: species, Weight: weight})
	l.logger.Info("catch added",
		"species", species,
		"weight", weight,
		"count", len(l.entries),
		"total_weight", l.TotalWeight(),
	)
}

// Entries returns a snapshot of the log in insertion order.
// Modifying the returned slice does not affect the log.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// TotalWeight returns the sum of all entry weights, 0 for an empty log.
func (l *Log) TotalWeight() float64 {
	var total float64
	for _, e := range l.entries {
		total += e.Weight
	}
	return total
}

// Count returns the number of entries.
func (l *Log) Count() int {
	return len(l.entries)
}

// Clear discards all entries. Clearing an empty log is a no-op apart from
// the notification.
func (l *Log) Clear() {
	discarded := len(l.entries)
	l.entries = nil
	l.logger.Info("session log cleared", "discarded", discarded)
}

// WriteSummary writes a human-readable summary of the session to w.
func (l *Log) WriteSummary(w io.Writer) error {
	_, err := io.WriteString(w, l.Summary())
	return err
}

// Summary renders the session summary written by WriteSummary.
func (l *Log) Summary() string {
	s := "Session catch log\n"
	s += fmt.Sprintf("  Fish caught: %d\n", l.Count())
	s += fmt.Sprintf("  Total weight: %.2f kg\n", l.TotalWeight())
	if len(l.entries) > 0 {
		s += "  Details:\n"
		for i, e := range l.entries {
			s += fmt.Sprintf("    %d. %s - %.2f kg\n", i+1, e.Species, e.Weight)
		}
	}
	return s
}
