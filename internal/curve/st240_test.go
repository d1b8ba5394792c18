package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhdr/go-pixel-transforms/internal/testutil"
)

func TestST240_LinearSegments(t *testing.T) {
	c := NewST240()

	// Below the breakpoints both branches are exactly linear.
	for _, v := range []float64{0.0, 0.001, 0.01, 0.02, st240Beta} {
		assert.InDelta(t, 4.0*v, c.Inverse(v), testutil.DefaultTolerance, "Inverse(%v)", v)
	}

	invBeta := c.Inverse(st240Beta)
	require.InDelta(t, 4.0*st240Beta, invBeta, testutil.DefaultTolerance)

	for _, v := range []float64{0.0, 0.01, 0.05, invBeta} {
		assert.InDelta(t, v/4.0, c.Forward(v), testutil.DefaultTolerance, "Forward(%v)", v)
	}
}

func TestST240_RoundTrip(t *testing.T) {
	c := NewST240()

	// Exact identity is not guaranteed at the piecewise boundary, so the
	// probe points stay away from it.
	for _, v := range []float64{0.0, 0.01, 0.5, 0.9, 1.0} {
		assert.InDelta(t, v, c.Inverse(c.Forward(v)), testutil.RoundTripTolerance, "Inverse(Forward(%v))", v)
		assert.InDelta(t, v, c.Forward(c.Inverse(v)), testutil.RoundTripTolerance, "Forward(Inverse(%v))", v)
	}
}

func TestST240_UnitEndpoint(t *testing.T) {
	c := NewST240()
	assert.InDelta(t, 1.0, c.Forward(1.0), testutil.RoundTripTolerance)
	assert.InDelta(t, 1.0, c.Inverse(1.0), testutil.RoundTripTolerance)
}

func TestST240_NegativeInputsDefined(t *testing.T) {
	c := NewST240()

	// Negative inputs take the linear branches; nothing may produce NaN.
	for _, v := range []float64{-1.0, -0.1, -0.001} {
		assert.False(t, math.IsNaN(c.Forward(v)), "Forward(%v)", v)
		assert.False(t, math.IsNaN(c.Inverse(v)), "Inverse(%v)", v)
		assert.InDelta(t, v/4.0, c.Forward(v), testutil.DefaultTolerance)
		assert.InDelta(t, 4.0*v, c.Inverse(v), testutil.DefaultTolerance)
	}
}

func TestST240_Monotonic(t *testing.T) {
	c := NewST240()

	prev := math.Inf(-1)
	for v := 0.0; v <= 1.0; v += 1.0 / 256.0 {
		got := c.Forward(v)
		assert.Greater(t, got, prev, "Forward not monotonic at %v", v)
		prev = got
	}
}
