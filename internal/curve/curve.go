// Package curve implements the nonlinear transfer-function curves used to
// move samples between the linear-light and encoded signal domains.
//
// Every curve exposes the same two-method contract: Forward evaluates the
// curve and Inverse evaluates its reverse mapping. Curves are pure scalar
// evaluators with all constants precomputed at construction; they hold no
// mutable state and are safe for concurrent use.
//
// The intended domain is a normalized [0, 1] signal range. No clamping is
// performed internally; callers clamp externally when required. The single
// numeric guard is that negative bases of fractional powers are floored to
// zero rather than producing NaN.
package curve

// Curve is the polymorphic transfer-function contract. Implementations are
// interchangeable by configuration; call sites never depend on a concrete
// curve type.
type Curve interface {
	// Forward evaluates the curve. Defined for all real inputs.
	Forward(v float64) float64

	// Inverse evaluates the reverse mapping of the curve. Forward and
	// Inverse are evaluated independently (no iterative refinement), so a
	// round trip approximates the identity to floating-point precision but
	// is not guaranteed exact at piecewise boundaries.
	Inverse(v float64) float64
}
