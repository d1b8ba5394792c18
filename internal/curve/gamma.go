package curve

import "math"

// defaultDisplayGamma is the conventional CRT display gamma.
const defaultDisplayGamma = 2.2

// Gamma is a constant-gamma power-law curve with no linear segment.
type Gamma struct {
	gamma        float64
	inverseGamma float64
}

// NewGamma constructs a power-law curve with the given exponent.
// A non-positive exponent falls back to the conventional 2.2.
func NewGamma(gamma float64) *Gamma {
	if gamma <= 0 {
		gamma = defaultDisplayGamma
	}
	return &Gamma{gamma: gamma, inverseGamma: 1.0 / gamma}
}

// Forward evaluates the power law. Negative inputs are floored to zero.
func (c *Gamma) Forward(v float64) float64 {
	return math.Pow(math.Max(v, 0.0), c.gamma)
}

// Inverse evaluates the reverse power law. Negative inputs are floored to zero.
func (c *Gamma) Inverse(v float64) float64 {
	return math.Pow(math.Max(v, 0.0), c.inverseGamma)
}

// Linear is the identity curve, used when samples are already in the
// target domain.
type Linear struct{}

// NewLinear constructs the identity curve.
func NewLinear() *Linear { return &Linear{} }

// Forward returns v unchanged.
func (c *Linear) Forward(v float64) float64 { return v }

// Inverse returns v unchanged.
func (c *Linear) Inverse(v float64) float64 { return v }
