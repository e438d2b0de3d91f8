package testutil

// FixedIDGenerator returns the same trip id every time.
//
// This keeps trip plans and golden output byte-identical across runs.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a generator that always returns id.
// If id is empty, Generate() returns "trip-test-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "trip-test-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed id.
//
// Implements trip.IDGenerator.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
