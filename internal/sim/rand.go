// Package sim provides the simulated sensor and weather sources used to plan
// an expedition. Values are random but bounded; pass a seeded *rand.Rand for
// reproducible output.
package sim

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"time"
)

// NewRand returns a generator seeded with seed. A zero seed draws one from
// crypto/rand, falling back to the wall clock.
func NewRand(seed int64) *mrand.Rand {
	if seed != 0 {
		return mrand.New(mrand.NewSource(seed))
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return mrand.New(mrand.NewSource(time.Now().UnixNano()))
	}
	return mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

func orRand(rng *mrand.Rand) *mrand.Rand {
	if rng == nil {
		return NewRand(0)
	}
	return rng
}
