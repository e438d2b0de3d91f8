package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixed time.Time

func (f fixed) Now() time.Time { return time.Time(f) }

func TestReal_Now(t *testing.T) {
	before := time.Now()
	got := Real{}.Now()
	assert.False(t, got.Before(before), "real clock went backwards")
}

func TestOrReal(t *testing.T) {
	assert.IsType(t, Real{}, OrReal(nil))

	at := time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)
	c := OrReal(fixed(at))
	assert.Equal(t, at, c.Now())
}
