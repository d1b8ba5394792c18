// Package testutil provides reusable test helper functions for pixel
// transform tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// DefaultTolerance is for float64 computations compared against exact
	// expectations.
	DefaultTolerance = 1e-10

	// RoundTripTolerance bounds forward/inverse curve round trips away
	// from piecewise boundaries.
	RoundTripTolerance = 1e-9

	// PlaneTolerance is for float32 plane data filtered with float64
	// accumulation.
	PlaneTolerance = 1e-6
)

// AssertSymmetric verifies that a slice is symmetric (s[i] == s[n-1-i]).
func AssertSymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric at i=%d: s[%d]=%f != s[%d]=%f", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf[F float32 | float64](t *testing.T, s []F) bool {
	t.Helper()
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(f, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [minVal, maxVal].
func AssertAllInRange[F float32 | float64](t *testing.T, s []F, minVal, maxVal F) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, float64(v), float64(minVal), float64(maxVal))
		}
	}
	return true
}

// ConstantPlane returns a width*height plane filled with value.
func ConstantPlane[T float32 | uint8 | uint16](width, height int, value T) []T {
	plane := make([]T, width*height)
	for i := range plane {
		plane[i] = value
	}
	return plane
}

// StepRows returns a width*height plane whose every row is the given
// pattern repeated; len(pattern) must equal width.
func StepRows[T float32 | uint8 | uint16](width, height int, pattern []T) []T {
	plane := make([]T, 0, width*height)
	for j := 0; j < height; j++ {
		plane = append(plane, pattern...)
	}
	return plane
}
