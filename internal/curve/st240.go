package curve

import "math"

// ST240 curve constants (SMPTE ST 240M broadcast-legacy curve).
const (
	st240InverseGamma = 0.45
	st240Alpha        = 0.1115
	st240Beta         = 0.0228
)

// ST240 is the SMPTE ST 240M transfer function: a linear toe below the
// breakpoint and a shifted power segment above it.
type ST240 struct {
	gamma        float64
	inverseGamma float64
	alpha        float64
	beta         float64
	invBeta      float64
}

// NewST240 constructs the ST 240M curve with its standard constants.
func NewST240() *ST240 {
	c := &ST240{
		inverseGamma: st240InverseGamma,
		gamma:        1.0 / st240InverseGamma,
		alpha:        st240Alpha,
		beta:         st240Beta,
	}
	// The forward breakpoint is the image of the inverse breakpoint, so the
	// two piecewise definitions meet at the same signal value.
	c.invBeta = c.Inverse(c.beta)
	return c
}

// Forward evaluates the ST 240M curve.
func (c *ST240) Forward(v float64) float64 {
	if v <= c.invBeta {
		return v / 4.0
	}
	// Floor the base at 0 so fractional exponentiation of a negative value
	// cannot produce a domain error.
	return math.Pow(math.Max((v+c.alpha)/(1.0+c.alpha), 0.0), c.gamma)
}

// Inverse evaluates the reverse mapping of the ST 240M curve.
func (c *ST240) Inverse(v float64) float64 {
	if v <= c.beta {
		return 4.0 * v
	}
	return (1.0+c.alpha)*math.Pow(v, c.inverseGamma) - c.alpha
}
