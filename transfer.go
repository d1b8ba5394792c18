package transforms

import (
	"fmt"

	"github.com/openhdr/go-pixel-transforms/internal/curve"
)

// TransferFunction is the polymorphic nonlinear curve contract. Forward
// evaluates the curve and Inverse its reverse mapping; both are defined for
// all real inputs with an intended domain of a normalized [0, 1] signal
// range. No clamping is performed internally.
//
// Implementations are pure evaluators with constants fixed at construction
// and are safe for concurrent use.
type TransferFunction interface {
	Forward(v float64) float64
	Inverse(v float64) float64
}

// CurveID selects which transfer function to instantiate.
type CurveID int

const (
	// CurveLinear is the identity curve.
	CurveLinear CurveID = iota

	// CurveST240 is the SMPTE ST 240M broadcast-legacy curve.
	CurveST240

	// CurveGamma22 is a constant-gamma 2.2 power law.
	CurveGamma22

	// CurvePQ is the SMPTE ST 2084 perceptual quantizer.
	CurvePQ
)

// NewTransferFunction instantiates the curve selected by id.
// Curves are interchangeable: call sites depend only on the
// TransferFunction contract.
func NewTransferFunction(id CurveID) (TransferFunction, error) {
	switch id {
	case CurveLinear:
		return curve.NewLinear(), nil
	case CurveST240:
		return curve.NewST240(), nil
	case CurveGamma22:
		return curve.NewGamma(displayGamma22), nil
	case CurvePQ:
		return curve.NewPQ(), nil
	default:
		return nil, fmt.Errorf("%w: id %d", ErrUnknownCurve, id)
	}
}

// ApplyForward evaluates tf.Forward over every sample of src into dst.
// dst and src must have equal length and may alias.
func ApplyForward(tf TransferFunction, dst, src []float32) {
	for i, v := range src {
		dst[i] = float32(tf.Forward(float64(v)))
	}
}

// ApplyInverse evaluates tf.Inverse over every sample of src into dst.
// dst and src must have equal length and may alias.
func ApplyInverse(tf TransferFunction, dst, src []float32) {
	for i, v := range src {
		dst[i] = float32(tf.Inverse(float64(v)))
	}
}
