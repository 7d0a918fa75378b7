// Package testutil provides shared test infrastructure for the stint simulator.
// It consolidates float-tolerant assertion helpers used across sim/ and its sub-packages.
package testutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// FloatTol is the absolute tolerance for values derived from a handful of float operations.
const FloatTol = 1e-9

// ApproxFloats makes cmp.Diff treat float64 fields within FloatTol (absolute) or 1e-12
// (relative) as equal.
var ApproxFloats = cmpopts.EquateApprox(1e-12, FloatTol)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertApproxEqual fails with a readable diff when want and got differ beyond ApproxFloats.
func AssertApproxEqual(t *testing.T, want, got any) {
	t.Helper()
	if diff := cmp.Diff(want, got, ApproxFloats); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
