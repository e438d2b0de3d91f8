package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContract(t *testing.T) {
	for name, factory := range contractBackends(t) {
		t.Run(name, func(t *testing.T) {
			t.Run("RoundTrip", func(t *testing.T) { testRoundTrip(t, factory(t)) })
			t.Run("IDsUniqueAndMonotonic", func(t *testing.T) { testIDsMonotonic(t, factory(t)) })
			t.Run("NewestFirst", func(t *testing.T) { testNewestFirst(t, factory(t)) })
			t.Run("AllAnglers", func(t *testing.T) { testAllAnglers(t, factory(t)) })
			t.Run("EmptyIsNotNil", func(t *testing.T) { testEmptyIsNotNil(t, factory(t)) })
			t.Run("SummaryScenario", func(t *testing.T) { testSummaryScenario(t, factory(t)) })
			t.Run("SummaryIsolation", func(t *testing.T) { testSummaryIsolation(t, factory(t)) })
			t.Run("SummaryEmpty", func(t *testing.T) { testSummaryEmpty(t, factory(t)) })
			t.Run("NameNormalization", func(t *testing.T) { testNameNormalization(t, factory(t)) })
			t.Run("PermissiveWeights", func(t *testing.T) { testPermissiveWeights(t, factory(t)) })
			t.Run("EnsureSchemaIdempotent", func(t *testing.T) { testEnsureSchemaIdempotent(t, factory(t)) })
		})
	}
}

func testRoundTrip(t *testing.T, s Store) {
	ctx := context.Background()

	saved, err := s.SaveCatch(ctx, "Ivan", "Perch", 0.8)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.CapturedAt.IsZero())

	records, err := s.AllCatches(ctx, "Ivan")
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Ivan", got.Angler)
	assert.Equal(t, "Perch", got.Species)
	assert.InDelta(t, 0.8, got.Weight, 1e-9)
	assert.True(t, saved.CapturedAt.Equal(got.CapturedAt),
		"captured_at %v != %v", got.CapturedAt, saved.CapturedAt)
}

func testIDsMonotonic(t *testing.T, s Store) {
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		rec, err := s.SaveCatch(ctx, "Ivan", "Roach", 0.2)
		require.NoError(t, err)
		assert.Greater(t, rec.ID, last)
		last = rec.ID
	}
}

func testNewestFirst(t *testing.T, s Store) {
	ctx := context.Background()

	for _, species := range []string{"Perch", "Pike", "Crucian"} {
		_, err := s.SaveCatch(ctx, "Petro", species, 1)
		require.NoError(t, err)
	}

	records, err := s.AllCatches(ctx, "Petro")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Crucian", records[0].Species)
	assert.Equal(t, "Pike", records[1].Species)
	assert.Equal(t, "Perch", records[2].Species)
	assert.True(t, records[0].CapturedAt.After(records[2].CapturedAt))
}

func testAllAnglers(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.SaveCatch(ctx, "Ivan", "Perch", 0.8)
	require.NoError(t, err)
	_, err = s.SaveCatch(ctx, "Maria", "Bream", 1.1)
	require.NoError(t, err)

	all, err := s.AllCatches(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	ivan, err := s.AllCatches(ctx, "Ivan")
	require.NoError(t, err)
	require.Len(t, ivan, 1)
	assert.Equal(t, "Perch", ivan[0].Species)
}

func testEmptyIsNotNil(t *testing.T, s Store) {
	records, err := s.AllCatches(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func testSummaryScenario(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.SaveCatch(ctx, "Ivan", "Perch", 0.8)
	require.NoError(t, err)
	_, err = s.SaveCatch(ctx, "Ivan", "Pike", 2.5)
	require.NoError(t, err)

	sum, err := s.CatchSummary(ctx, "Ivan")
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Count)
	assert.InDelta(t, 3.3, sum.TotalWeight, 1e-9)
}

func testSummaryIsolation(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.SaveCatch(ctx, "Ivan", "Perch", 0.8)
	require.NoError(t, err)
	_, err = s.SaveCatch(ctx, "Maria", "Catfish", 3.2)
	require.NoError(t, err)
	_, err = s.SaveCatch(ctx, "Maria", "Bream", 1.0)
	require.NoError(t, err)

	ivan, err := s.CatchSummary(ctx, "Ivan")
	require.NoError(t, err)
	assert.Equal(t, 1, ivan.Count)
	assert.InDelta(t, 0.8, ivan.TotalWeight, 1e-9)

	maria, err := s.CatchSummary(ctx, "Maria")
	require.NoError(t, err)
	assert.Equal(t, 2, maria.Count)
	assert.InDelta(t, 4.2, maria.TotalWeight, 1e-9)
}

func testSummaryEmpty(t *testing.T, s Store) {
	sum, err := s.CatchSummary(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
}

func testNameNormalization(t *testing.T, s Store) {
	ctx := context.Background()

	// "Йосип" written with a decomposed Й (И + combining breve).
	decomposed := "\u0418\u0306осип"
	composed := "\u0419осип"

	_, err := s.SaveCatch(ctx, "  "+decomposed+" ", "Perch", 0.5)
	require.NoError(t, err)

	sum, err := s.CatchSummary(ctx, composed)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Count)

	records, err := s.AllCatches(ctx, composed)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, composed, records[0].Angler)
}

func testPermissiveWeights(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.SaveCatch(ctx, "Ivan", "Boot", 0)
	require.NoError(t, err)
	_, err = s.SaveCatch(ctx, "Ivan", "Typo", -1.5)
	require.NoError(t, err)

	sum, err := s.CatchSummary(ctx, "Ivan")
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Count)
	assert.InDelta(t, -1.5, sum.TotalWeight, 1e-9)
}

func testEnsureSchemaIdempotent(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.SaveCatch(ctx, "Ivan", "Perch", 0.8)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.EnsureSchema(ctx), "EnsureSchema() iteration %d", i)
	}

	sum, err := s.CatchSummary(ctx, "Ivan")
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Count, "existing records must survive EnsureSchema")
}
