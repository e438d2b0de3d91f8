package testutil

import (
	"sync"
	"time"
)

// Epoch is the default start time for StepClock: dawn on an early-summer
// fishing day, in UTC.
var Epoch = time.Date(2024, time.June, 1, 5, 30, 0, 0, time.UTC)

// StepClock is a deterministic wall clock for tests.
//
// Every call to Now() returns the current instant and then advances it by
// the configured step, so consecutive store writes get strictly increasing
// timestamps without sleeping.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type StepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepClock creates a clock starting at Epoch that advances one minute
// per reading.
func NewStepClock() *StepClock {
	return NewStepClockAt(Epoch, time.Minute)
}

// NewStepClockAt creates a clock starting at start that advances by step on
// every reading. A zero step freezes the clock.
func NewStepClockAt(start time.Time, step time.Duration) *StepClock {
	return &StepClock{now: start, step: step}
}

// Now returns the current instant and advances the clock.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Peek returns the next instant Now() would return, without advancing.
func (c *StepClock) Peek() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *StepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Reset rewinds the clock to start.
func (c *StepClock) Reset(start time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = start
}
