package testutil

import (
	"math"
	"testing"
)

// AssertArrayAlmostEqual fails the test unless actual and expected agree
// elementwise to the given number of decimal places. Agreement means
// |actual - expected| < 1.5 * 10^-decimal, so values that round to the
// same decimal representation always pass.
func AssertArrayAlmostEqual(t *testing.T, expected, actual []float64, decimal int) {
	t.Helper()

	if len(actual) != len(expected) {
		t.Fatalf("length mismatch: expected %d values, got %d", len(expected), len(actual))
	}
	tol := 1.5 * math.Pow(10, -float64(decimal))
	for i := range expected {
		diff := math.Abs(actual[i] - expected[i])
		if math.IsNaN(diff) || diff >= tol {
			t.Errorf("element %d: expected %.*f, got %v (diff %g, tol %g)",
				i, decimal, expected[i], actual[i], diff, tol)
		}
	}
}

// AssertAllFinite fails the test if any value is NaN or infinite.
func AssertAllFinite(t *testing.T, values []float64) {
	t.Helper()

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("element %d is not finite: %v", i, v)
		}
	}
}
