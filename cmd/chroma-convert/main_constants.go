package main

// Default frame geometry for the synthetic test pattern.
const (
	defaultWidth  = 64
	defaultHeight = 8
)

// Test pattern constants.
const (
	// stepEdgeFraction places the hard chroma edge in the pattern.
	stepEdgeFraction = 0.5

	// lowLevel and highLevel are the chroma values on either side of
	// the edge, in the normalized [0, 1] range.
	lowLevel  = 0.1
	highLevel = 0.9
)
