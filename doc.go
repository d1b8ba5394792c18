// Package transforms provides pixel-domain signal transforms for video
// processing pipelines in pure Go.
//
// The package implements two primitives with strict numeric contracts:
// a family of nonlinear transfer-function curves for moving samples between
// the linear-light and encoded signal domains, and a chroma resampler that
// converts 4:4:4 sampled frames to 4:2:2 by horizontal decimation with
// configurable separable filter kernels and several overshoot-control
// policies.
//
// # Features
//
//   - Interchangeable transfer-function curves (linear, ST 240M, constant
//     gamma, SMPTE ST 2084 PQ) behind one Forward/Inverse contract
//   - Four 2:1 decimation filter methods, from smooth box averaging to a
//     Kaiser-windowed sinc designed at construction time
//   - Chroma siting support per H.273 signaling (progressive content)
//   - Four overshoot-control policies for ringing suppression near edges
//   - Bit-exact fixed-point paths for 8-bit and 16-bit frames alongside a
//     float path with float64 accumulation
//   - Optional SIMD acceleration via github.com/tphakala/simd
//
// # Quick Start
//
// Convert a float 4:4:4 frame to 4:2:2:
//
//	conv, err := transforms.New444to422(&transforms.Config{
//	    Method:      transforms.MethodMPEG2,
//	    LocationTop: transforms.LocLeft,
//	    Overshoot:   transforms.OvershootSubstitute,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, _ := transforms.NewFloatFrame(width, height, transforms.ChromaFormat422)
//	if err := conv.Process(out, in); err != nil {
//	    log.Fatal(err)
//	}
//
// Move samples between domains:
//
//	tf, err := transforms.NewTransferFunction(transforms.CurveST240)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	linear := tf.Forward(encoded)
//
// # Architecture
//
// A Frame enters the resampler; luma is copied unchanged and each chroma
// plane is filtered row by row:
//
//	Frame 4:4:4 -> [luma copy] ------------------> Frame 4:2:2
//	            -> [kernel pair + policy per row] ->
//
// Kernels carry two numerically equivalent encodings: floating point for
// the float pixel path and fixed point (integer coefficients, offset,
// arithmetic right shift) for the integer paths, which must stay bit-exact
// across implementations for toolchain interoperability.
//
// # Error Handling
//
// Frames that disagree on representation or geometry are a caller error:
// Process returns ErrFormatMismatch before writing any output. Numeric edge
// cases inside the curves (negative bases of fractional powers) are floored
// to zero by policy, never reported as errors.
//
// # Thread Safety
//
// Resamplers and transfer functions hold no per-call mutable state after
// construction, so a single instance may be shared across goroutines
// processing different frames. Config.EnableParallel additionally filters
// the two chroma planes of one frame concurrently with identical results.
package transforms
