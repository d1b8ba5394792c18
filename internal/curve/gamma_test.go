package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openhdr/go-pixel-transforms/internal/testutil"
)

func TestGamma_RoundTrip(t *testing.T) {
	c := NewGamma(2.2)

	for _, v := range []float64{0.0, 0.01, 0.5, 0.9, 1.0} {
		assert.InDelta(t, v, c.Inverse(c.Forward(v)), testutil.RoundTripTolerance, "Inverse(Forward(%v))", v)
		assert.InDelta(t, v, c.Forward(c.Inverse(v)), testutil.RoundTripTolerance, "Forward(Inverse(%v))", v)
	}
}

func TestGamma_NegativeFloored(t *testing.T) {
	c := NewGamma(2.2)

	assert.Zero(t, c.Forward(-0.25))
	assert.Zero(t, c.Inverse(-0.25))
}

func TestGamma_DefaultExponent(t *testing.T) {
	c := NewGamma(0)
	assert.InDelta(t, defaultDisplayGamma, c.gamma, 0)
}

func TestLinear_Identity(t *testing.T) {
	c := NewLinear()

	for _, v := range []float64{-1.0, 0.0, 0.5, 1.0, 2.0} {
		assert.InDelta(t, v, c.Forward(v), 0)
		assert.InDelta(t, v, c.Inverse(v), 0)
	}
}
