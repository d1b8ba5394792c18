// Package engine implements the horizontal 4:4:4 to 4:2:2 chroma decimation
// loops over raw plane buffers.
//
// Each output sample at horizontal position x (stepping by 2 over the input)
// combines the input window [x-CenterOffset, x-CenterOffset+Taps) of the
// active kernel, with out-of-bounds window indices clamped to the row edges
// (edge replication, never wraparound).
//
// The float path accumulates in float64 and supports four overshoot-control
// policies built on a primary/fallback kernel pair. The integer paths are
// direct fixed-point multiply-accumulate only: add the kernel offset, then
// arithmetic right shift. The shift truncates; no extra rounding bias is
// applied, which keeps integer results bit-exact across implementations.
//
// All functions are pure over caller-owned buffers. Scratch rows are local
// to each call, so the same kernels may be used concurrently.
package engine

import (
	"gonum.org/v1/gonum/floats"

	"github.com/openhdr/go-pixel-transforms/internal/kernel"
	"github.com/openhdr/go-pixel-transforms/internal/mathutil"
	"github.com/openhdr/go-pixel-transforms/internal/simdops"
)

// OvershootMode selects the ringing-control policy applied to each
// filtered chroma sample on the float path.
type OvershootMode int

const (
	// OvershootOff computes the primary filtered value directly,
	// clamping to the caller's range only when the kernel requests it.
	OvershootOff OvershootMode = iota

	// OvershootRecompute discards the primary value and recomputes the
	// sample with the fallback kernel whenever the primary value lands
	// outside the min/max of the raw samples in the primary window.
	OvershootRecompute

	// OvershootSubstitute replaces the primary value with the
	// fallback-filtered value whenever the primary value lands outside
	// the min/max of the raw samples in the fallback window.
	OvershootSubstitute

	// OvershootClampRange clamps the primary value to the min/max of the
	// raw samples in the fallback window; the fallback kernel itself is
	// never evaluated.
	OvershootClampRange
)

// PixelInt constrains the integer pixel representations: narrow 8-bit
// planes and 16-bit planes share one filtering path with identical
// arithmetic.
type PixelInt interface {
	~uint8 | ~uint16
}

// FilterPlaneFloat decimates a float 4:4:4 chroma plane to 4:2:2.
// width and height are the output plane dimensions; src rows are 2*width
// samples wide. minV and maxV bound the final clip when the primary
// kernel's Clip flag is set.
//
// fallback may be nil only when mode is OvershootOff.
func FilterPlaneFloat(dst, src []float32, width, height int, primary, fallback *kernel.Kernel, mode OvershootMode, minV, maxV float32) {
	inWidth := 2 * width
	ops := simdops.Float64Ops()

	// Edge-replicated scratch rows keep every filter window contiguous and
	// in bounds, so the window product is a straight dot product.
	scratchP := make([]float64, inWidth+primary.Taps)
	var scratchF []float64
	if mode != OvershootOff && fallback != nil {
		scratchF = make([]float64, inWidth+fallback.Taps)
	}

	lo, hi := float64(minV), float64(maxV)

	for j := 0; j < height; j++ {
		row := src[j*inWidth : (j+1)*inWidth]
		out := dst[j*width : (j+1)*width]

		padRow(scratchP, row, primary.CenterOffset)
		if scratchF != nil {
			padRow(scratchF, row, fallback.CenterOffset)
		}

		for i := 0; i < width; i++ {
			pos := 2 * i
			win := scratchP[pos : pos+primary.Taps]
			v := (ops.DotProductUnsafe(win, primary.FloatCoeffs) + primary.FloatOffset) * primary.FloatScale

			switch mode {
			case OvershootRecompute:
				if v < floats.Min(win) || v > floats.Max(win) {
					fwin := scratchF[pos : pos+fallback.Taps]
					v = (ops.DotProductUnsafe(fwin, fallback.FloatCoeffs) + fallback.FloatOffset) * fallback.FloatScale
				}

			case OvershootSubstitute:
				fwin := scratchF[pos : pos+fallback.Taps]
				if v < floats.Min(fwin) || v > floats.Max(fwin) {
					v = (ops.DotProductUnsafe(fwin, fallback.FloatCoeffs) + fallback.FloatOffset) * fallback.FloatScale
				}

			case OvershootClampRange:
				fwin := scratchF[pos : pos+fallback.Taps]
				v = mathutil.Clamp(v, floats.Min(fwin), floats.Max(fwin))
			}

			if primary.Clip {
				v = mathutil.Clamp(v, lo, hi)
			}
			out[i] = float32(v)
		}
	}
}

// padRow fills scratch with an edge-replicated float64 copy of row, shifted
// left by centerOffset so the window for output x starts at scratch[2x].
func padRow(scratch []float64, row []float32, centerOffset int) {
	last := len(row) - 1
	for j := range scratch {
		scratch[j] = float64(row[mathutil.ClampIndex(j-centerOffset, last)])
	}
}

// FilterPlaneInt decimates an integer 4:4:4 chroma plane to 4:2:2 using the
// kernel's fixed-point encoding. Integer paths are always direct: there is
// no overshoot policy, matching the float OvershootOff behavior.
func FilterPlaneInt[T PixelInt](dst, src []T, width, height int, k *kernel.Kernel, minV, maxV int) {
	inWidth := 2 * width
	last := inWidth - 1

	for j := 0; j < height; j++ {
		row := src[j*inWidth : (j+1)*inWidth]
		out := dst[j*width : (j+1)*width]

		for i := 0; i < width; i++ {
			pos := 2 * i

			value := 0
			for t := 0; t < k.Taps; t++ {
				value += int(k.FixedCoeffs[t]) * int(row[mathutil.ClampIndex(pos+t-k.CenterOffset, last)])
			}

			// Arithmetic shift truncates; the kernel offset is the only
			// rounding term.
			value = (value + int(k.FixedOffset)) >> k.FixedShift
			if k.Clip {
				value = mathutil.Clamp(value, minV, maxV)
			}
			out[i] = T(value)
		}
	}
}
