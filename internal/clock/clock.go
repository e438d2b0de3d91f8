// Package clock provides the wall-clock abstraction shared by the store,
// the trip tracker and the angler.
//
// Production code uses Real. Tests substitute testutil.StepClock so that
// timestamps, durations and record ordering are reproducible.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Real is the system clock.
type Real struct{}

// Now returns time.Now().
func (Real) Now() time.Time { return time.Now() }

// OrReal returns c, or Real when c is nil.
func OrReal(c Clock) Clock {
	if c == nil {
		return Real{}
	}
	return c
}
