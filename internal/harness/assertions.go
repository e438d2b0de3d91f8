package harness

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/roach88/tackle/internal/store"
)

// weightTolerance absorbs float summation error in weight comparisons.
const weightTolerance = 1e-6

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Index    int
	Type     string
	Angler   string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "assertions[%d] %s", e.Index, e.Type)
	if e.Angler != "" {
		fmt.Fprintf(&buf, " (%s)", e.Angler)
	}
	fmt.Fprintf(&buf, ": expected %s, got %s", e.Expected, e.Actual)
	return buf.String()
}

// evaluate runs all assertions and returns the failure messages.
func (h *Harness) evaluate(ctx context.Context, assertions []Assertion) []string {
	var errs []string
	for i, a := range assertions {
		if err := h.check(ctx, i, a); err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

func (h *Harness) check(ctx context.Context, index int, a Assertion) error {
	fail := func(expected, actual string) error {
		return &AssertionError{Index: index, Type: a.Type, Angler: a.Angler, Expected: expected, Actual: actual}
	}

	switch a.Type {
	case AssertSessionCount:
		got := h.angler(a.Angler).Session().Count()
		if got != *a.Count {
			return fail(fmt.Sprintf("%d session entries", *a.Count), fmt.Sprintf("%d", got))
		}

	case AssertSessionWeight:
		got := h.angler(a.Angler).Session().TotalWeight()
		if !weightEqual(got, *a.Weight) {
			return fail(fmt.Sprintf("session weight %.2f", *a.Weight), fmt.Sprintf("%.2f", got))
		}

	case AssertSummary:
		sum, err := h.angler(a.Angler).CatchSummary(ctx)
		if err != nil {
			return fail("a summary", err.Error())
		}
		if sum.Count != *a.Count || !weightEqual(sum.TotalWeight, *a.Weight) {
			return fail(
				fmt.Sprintf("count %d weight %.2f", *a.Count, *a.Weight),
				fmt.Sprintf("count %d weight %.2f", sum.Count, sum.TotalWeight),
			)
		}

	case AssertRecords:
		st := h.primary
		if a.Angler != "" {
			h.angler(a.Angler)
			st = h.stores[a.Angler]
		}
		recs, err := st.AllCatches(ctx, a.Angler)
		if err != nil {
			return fail(fmt.Sprintf("records %v", a.Species), err.Error())
		}
		got := speciesOf(recs)
		if !slices.Equal(got, a.Species) {
			return fail(fmt.Sprintf("records %v", a.Species), fmt.Sprintf("%v", got))
		}

	default:
		return fail("a known assertion type", a.Type)
	}
	return nil
}

func speciesOf(recs []store.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Species
	}
	return out
}

func weightEqual(a, b float64) bool {
	return math.Abs(a-b) <= weightTolerance
}
