package kernel

import (
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/openhdr/go-pixel-transforms/internal/mathutil"
)

// Windowed-sinc design constants.
const (
	// sincCutoff is the normalized cutoff for 2:1 decimation: half the
	// output Nyquist, i.e. a quarter of the input sampling rate.
	sincCutoff = 0.25

	// sincAttenuation is the target stopband attenuation in dB used to
	// derive the Kaiser window β parameter.
	sincAttenuation = 70.0

	// sincTapsPhase0 and sincTapsPhase1 are the tap counts for the two
	// sub-pixel phases: even-length for interstitial chroma, odd-length
	// for co-sited chroma.
	sincTapsPhase0 = 8
	sincTapsPhase1 = 7

	// sincZeroThreshold guards the sinc singularity and near-zero sums.
	sincZeroThreshold = 1e-10

	// sincFixedShift is the fixed-point quantization shift; coefficients
	// are scaled by 1<<sincFixedShift and rounded.
	sincFixedShift = 12
)

// designWindowedSinc2x designs a Kaiser-windowed sinc 2:1 decimation kernel
// for the given sub-pixel phase.
//
// The float coefficients are normalized to exact unit DC gain. The
// fixed-point coefficients are rounded to sincFixedShift bits and the
// rounding residual is folded into the center tap so the integer DC sum is
// exactly 1<<sincFixedShift, keeping the two encodings equivalent.
func designWindowedSinc2x(phase int) (*Kernel, error) {
	taps := sincTapsPhase0
	if phase == 1 {
		taps = sincTapsPhase1
	}

	beta := mathutil.KaiserBeta(sincAttenuation)
	i0Beta := mathutil.BesselI0(beta)
	center := float64(taps-1) / 2.0

	coeffs := make([]float64, taps)
	for n := range taps {
		x := float64(n) - center

		// Windowed sinc: sin(2πfc·x)/(πx), limit 2fc at x=0.
		var sinc float64
		if math.Abs(x) < sincZeroThreshold {
			sinc = 2.0 * sincCutoff
		} else {
			sinc = math.Sin(2.0*math.Pi*sincCutoff*x) / (math.Pi * x)
		}

		// Kaiser window term: I₀(β√(1-(x/α)²)) / I₀(β) with α = (N-1)/2.
		// Even-length kernels evaluate the window at half-integer offsets.
		w := x / center
		win := mathutil.BesselI0(beta*math.Sqrt(math.Max(0.0, 1.0-w*w))) / i0Beta

		coeffs[n] = sinc * win
	}

	// Normalize to unit DC gain.
	sum := f64.Sum(coeffs)
	if math.Abs(sum) > sincZeroThreshold {
		f64.Scale(coeffs, coeffs, 1.0/sum)
	}

	fixed := quantizeCoeffs(coeffs, sincFixedShift)

	return &Kernel{
		Taps:         taps,
		CenterOffset: centerOffsetFor(taps),
		FloatCoeffs:  coeffs,
		FloatOffset:  0.0,
		FloatScale:   1.0,
		FixedCoeffs:  fixed,
		FixedOffset:  1 << (sincFixedShift - 1),
		FixedShift:   sincFixedShift,
		Clip:         true,
		Phase:        phase,
	}, nil
}

// quantizeCoeffs converts unit-gain float coefficients to fixed point with
// the given shift, correcting the center tap so the integer sum is exactly
// 1<<shift.
func quantizeCoeffs(coeffs []float64, shift uint) []int32 {
	scale := float64(int32(1) << shift)

	fixed := make([]int32, len(coeffs))
	var sum int32
	for i, c := range coeffs {
		fixed[i] = int32(math.Round(c * scale))
		sum += fixed[i]
	}

	fixed[len(fixed)/2] += int32(1)<<shift - sum
	return fixed
}
