// Package kernel builds the 1-D separable filter kernels used for chroma
// decimation. Every kernel carries two numerically equivalent encodings: a
// floating-point form (coefficients, additive offset, multiplicative scale)
// for the float pixel path, and a fixed-point form (integer coefficients,
// rounding offset, right shift) for the deterministic integer pixel paths.
package kernel

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Method identifies a 2:1 horizontal decimation filter family.
type Method int

const (
	// MethodBox is the smooth averaging filter. It has no negative lobes and
	// can never overshoot the local sample range, so it doubles as the
	// non-ringing fallback kernel for all overshoot-control modes.
	MethodBox Method = iota

	// MethodTent is a triangular filter, slightly wider than MethodBox.
	MethodTent

	// MethodMPEG2 is a sharp filter with negative lobes in the style of the
	// MPEG-2 half-pel interpolators. Sharper passband, visible ringing near
	// edges; results are clipped to the caller's sample range.
	MethodMPEG2

	// MethodWindowedSinc is a Kaiser-windowed sinc decimation filter designed
	// at construction time. Sharpest of the built-in methods.
	MethodWindowedSinc

	numMethods
)

// String returns the method name for diagnostics.
func (m Method) String() string {
	switch m {
	case MethodBox:
		return "box"
	case MethodTent:
		return "tent"
	case MethodMPEG2:
		return "mpeg2"
	case MethodWindowedSinc:
		return "windowed-sinc"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Kernel is an immutable description of a 1-D decimation filter.
// Built once per configuration and reused for every row; never mutated
// after construction, so it is safe for concurrent read-only use.
type Kernel struct {
	// Taps is the number of input samples combined per output sample.
	Taps int

	// CenterOffset aligns the kernel window: the window for output
	// position x covers input indices [x-CenterOffset, x-CenterOffset+Taps).
	CenterOffset int

	// Floating-point encoding: result = (Σ FloatCoeffs[i]*sample[i] + FloatOffset) * FloatScale.
	FloatCoeffs []float64
	FloatOffset float64
	FloatScale  float64

	// Fixed-point encoding: result = (Σ FixedCoeffs[i]*sample[i] + FixedOffset) >> FixedShift.
	// The shift is an arithmetic right shift; no further rounding is applied.
	FixedCoeffs []int32
	FixedOffset int32
	FixedShift  uint

	// Clip requests clamping of the scaled result to the caller's
	// [min, max] sample range.
	Clip bool

	// Phase is the sub-pixel siting of the first output sample: 0 for
	// interstitial chroma, 1 for co-sited chroma.
	Phase int
}

// tableSpec is one built-in fixed-point kernel. Float coefficients are
// derived from the integers so the two encodings agree exactly at DC.
type tableSpec struct {
	coeffs []int32
	shift  uint
	clip   bool
}

// Built-in 2:1 decimation kernels, indexed by [method][phase].
// Each coefficient set sums to exactly 1<<shift (unit DC gain).
// Phase 0 kernels are even-length (interstitial siting), phase 1 kernels
// odd-length (co-sited siting).
var decimation2xTable = [numMethods][2]tableSpec{
	MethodBox: {
		{coeffs: []int32{1, 1}, shift: 1},
		{coeffs: []int32{1, 2, 1}, shift: 2},
	},
	MethodTent: {
		{coeffs: []int32{1, 3, 3, 1}, shift: 3},
		{coeffs: []int32{1, 6, 1}, shift: 3},
	},
	MethodMPEG2: {
		{coeffs: []int32{2, -6, 20, 20, -6, 2}, shift: 5, clip: true},
		{coeffs: []int32{-1, 0, 9, 16, 9, 0, -1}, shift: 5, clip: true},
	},
	// MethodWindowedSinc is designed at runtime, see design.go.
}

// NewDecimation2x constructs a 2:1 horizontal decimation kernel for the
// given method and sub-pixel phase (0 or 1).
func NewDecimation2x(method Method, phase int) (*Kernel, error) {
	if phase != 0 && phase != 1 {
		return nil, fmt.Errorf("kernel: invalid phase %d (must be 0 or 1)", phase)
	}

	if method == MethodWindowedSinc {
		return designWindowedSinc2x(phase)
	}

	if method < 0 || method >= numMethods {
		return nil, fmt.Errorf("kernel: unknown method %d", int(method))
	}

	spec := decimation2xTable[method][phase]
	return newFromTable(spec, phase), nil
}

// newFromTable expands a fixed-point table entry into a full Kernel with
// the equivalent floating-point encoding.
func newFromTable(spec tableSpec, phase int) *Kernel {
	taps := len(spec.coeffs)
	sum := int32(1) << spec.shift

	flt := make([]float64, taps)
	for i, c := range spec.coeffs {
		flt[i] = float64(c)
	}

	return &Kernel{
		Taps:         taps,
		CenterOffset: centerOffsetFor(taps),
		FloatCoeffs:  flt,
		FloatOffset:  0.0,
		FloatScale:   1.0 / float64(sum),
		FixedCoeffs:  spec.coeffs,
		FixedOffset:  sum >> 1,
		FixedShift:   spec.shift,
		Clip:         spec.clip,
		Phase:        phase,
	}
}

// centerOffsetFor returns the window alignment for a kernel of the given
// length: even-length kernels straddle the output position, odd-length
// kernels are centered on it.
func centerOffsetFor(taps int) int {
	if taps%2 == 0 {
		return taps/2 - 1
	}
	return (taps - 1) / 2
}

// FloatDCGain returns the DC gain of the floating-point encoding.
// Unity for all decimation kernels built by this package.
func (k *Kernel) FloatDCGain() float64 {
	return (floats.Sum(k.FloatCoeffs) + k.FloatOffset) * k.FloatScale
}

// FixedDCSum returns the sum of the fixed-point coefficients.
// Equals 1<<FixedShift for all decimation kernels built by this package.
func (k *Kernel) FixedDCSum() int32 {
	var sum int32
	for _, c := range k.FixedCoeffs {
		sum += c
	}
	return sum
}
