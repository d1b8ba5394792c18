package curve

import "math"

// SMPTE ST 2084 (PQ) constants.
const (
	pqM1 = 2610.0 / 16384.0
	pqM2 = 2523.0 / 4096.0 * 128.0
	pqC1 = 3424.0 / 4096.0
	pqC2 = 2413.0 / 4096.0 * 32.0
	pqC3 = 2392.0 / 4096.0 * 32.0
)

// PQ is the SMPTE ST 2084 perceptual-quantizer curve over a normalized
// [0, 1] signal range (peak luminance mapped to 1.0).
type PQ struct {
	m1, m2     float64
	c1, c2, c3 float64
}

// NewPQ constructs the ST 2084 curve with its standard constants.
func NewPQ() *PQ {
	return &PQ{m1: pqM1, m2: pqM2, c1: pqC1, c2: pqC2, c3: pqC3}
}

// Forward evaluates the PQ curve.
func (c *PQ) Forward(v float64) float64 {
	t := math.Pow(math.Max(v, 0.0), 1.0/c.m2)
	num := math.Max(t-c.c1, 0.0)
	den := c.c2 - c.c3*t
	return math.Pow(num/den, 1.0/c.m1)
}

// Inverse evaluates the reverse mapping of the PQ curve.
func (c *PQ) Inverse(v float64) float64 {
	t := math.Pow(math.Max(v, 0.0), c.m1)
	return math.Pow((c.c1+c.c2*t)/(1.0+c.c3*t), c.m2)
}
