package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openhdr/go-pixel-transforms/internal/testutil"
)

func TestPQ_Endpoints(t *testing.T) {
	c := NewPQ()

	// Black and normalized peak map exactly under both directions.
	assert.Zero(t, c.Forward(0.0))
	assert.InDelta(t, 1.0, c.Forward(1.0), testutil.RoundTripTolerance)
	assert.InDelta(t, 1.0, c.Inverse(1.0), testutil.RoundTripTolerance)

	// The PQ encoding of zero light is a tiny positive code value, not
	// exactly zero.
	assert.InDelta(t, 0.0, c.Inverse(0.0), 1e-5)
}

func TestPQ_RoundTrip(t *testing.T) {
	c := NewPQ()

	for _, v := range []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 1.0} {
		assert.InDelta(t, v, c.Forward(c.Inverse(v)), 1e-9, "Forward(Inverse(%v))", v)
		assert.InDelta(t, v, c.Inverse(c.Forward(v)), 1e-9, "Inverse(Forward(%v))", v)
	}
}

func TestPQ_Monotonic(t *testing.T) {
	c := NewPQ()

	prev := -1.0
	for v := 0.0; v <= 1.0; v += 1.0 / 128.0 {
		got := c.Inverse(v)
		assert.Greater(t, got, prev, "Inverse not monotonic at %v", v)
		prev = got
	}
}

func TestPQ_NegativeFloored(t *testing.T) {
	c := NewPQ()

	// Negative inputs are floored to the zero-input result by policy.
	assert.InDelta(t, c.Forward(0.0), c.Forward(-0.5), 0)
	assert.InDelta(t, c.Inverse(0.0), c.Inverse(-0.5), 0)
}
