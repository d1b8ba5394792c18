package transforms

import (
	"errors"
	"fmt"
	"sync"

	"github.com/openhdr/go-pixel-transforms/internal/engine"
	"github.com/openhdr/go-pixel-transforms/internal/kernel"
)

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid transform configuration")

	// ErrFormatMismatch indicates that the input and output frames of a
	// conversion disagree on pixel representation or geometry. This is a
	// caller error: format negotiation happens upstream, and the
	// conversion never proceeds with partial output.
	ErrFormatMismatch = errors.New("frame format mismatch")

	// ErrUnknownCurve indicates an unrecognized transfer-function selector.
	ErrUnknownCurve = errors.New("unknown transfer function curve")
)

// FilterMethod selects the primary 2:1 chroma decimation filter.
type FilterMethod int

const (
	// MethodBox is the smooth 2-tap/3-tap averaging filter (the default).
	// It is also the fixed fallback filter for all overshoot modes.
	MethodBox FilterMethod = iota

	// MethodTent is a triangular filter, slightly softer rolloff than box.
	MethodTent

	// MethodMPEG2 is a sharp filter with negative lobes.
	MethodMPEG2

	// MethodWindowedSinc is a Kaiser-windowed sinc filter designed at
	// construction time, the sharpest of the built-in methods.
	MethodWindowedSinc
)

// ChromaLocation enumerates the H.273 chroma sample siting values.
// Only the horizontal component matters for 4:2:2 conversion: even values
// site chroma between luma columns (phase 0), odd values co-site it with a
// luma column (phase 1).
type ChromaLocation int

const (
	// LocLeft is siting value 0 (left, vertically centered).
	LocLeft ChromaLocation = iota

	// LocCenter is siting value 1 (horizontally and vertically centered).
	LocCenter

	// LocTopLeft is siting value 2 (co-sited with the top-left luma sample).
	LocTopLeft

	// LocTop is siting value 3 (horizontally centered, top row).
	LocTop

	// LocBottomLeft is siting value 4 (co-sited with the bottom-left luma sample).
	LocBottomLeft

	// LocBottom is siting value 5 (horizontally centered, bottom row).
	LocBottom
)

// OvershootMode selects the ringing-control policy for float chroma
// filtering. Integer pixel paths always behave as OvershootOff.
type OvershootMode int

const (
	// OvershootOff applies the primary filter directly.
	OvershootOff OvershootMode = iota

	// OvershootRecompute recomputes overshooting samples with the
	// fallback filter.
	OvershootRecompute

	// OvershootSubstitute substitutes the fallback-filtered value for
	// overshooting samples.
	OvershootSubstitute

	// OvershootClampRange clamps overshooting samples to the raw sample
	// range of the fallback window.
	OvershootClampRange
)

// Config holds 444-to-422 converter configuration.
type Config struct {
	// Method selects the primary decimation filter.
	Method FilterMethod

	// LocationTop is the chroma siting of the frame (top field for
	// interlaced signaling).
	LocationTop ChromaLocation

	// LocationBottom is the bottom-field chroma siting. Accepted for
	// signaling parity but ignored: only progressive content is supported.
	LocationBottom ChromaLocation

	// Overshoot selects the ringing-control policy for float frames.
	Overshoot OvershootMode

	// EnableParallel filters the two chroma planes concurrently.
	// Results are identical to sequential processing.
	EnableParallel bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Method < MethodBox || c.Method > MethodWindowedSinc {
		return fmt.Errorf("%w: filter method %d", ErrInvalidConfig, c.Method)
	}

	if c.LocationTop < LocLeft || c.LocationTop > LocBottom {
		return fmt.Errorf("%w: chroma location %d", ErrInvalidConfig, c.LocationTop)
	}

	if c.Overshoot < OvershootOff || c.Overshoot > OvershootClampRange {
		return fmt.Errorf("%w: overshoot mode %d", ErrInvalidConfig, c.Overshoot)
	}

	return nil
}

// ChromaResampler converts 4:4:4 frames to 4:2:2 by horizontal chroma
// decimation. Luma is copied unchanged; each chroma plane is filtered
// row by row with the configured kernel pair.
//
// A resampler holds no per-call mutable state: its kernels are immutable
// after construction, so one instance may process many frame pairs and is
// safe for concurrent read-only use.
type ChromaResampler struct {
	primary  *kernel.Kernel
	fallback *kernel.Kernel
	mode     engine.OvershootMode
	parallel bool
}

// New444to422 constructs a converter for the given configuration.
//
// When an overshoot mode is requested, a second non-ringing fallback kernel
// is built with the box method regardless of the primary method: the
// fallback always favors smoothness over sharpness.
func New444to422(config *Config) (*ChromaResampler, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	phase := horizontalPhase(config.LocationTop)

	primary, err := kernel.NewDecimation2x(methodToKernel(config.Method), phase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	r := &ChromaResampler{
		primary:  primary,
		mode:     engine.OvershootMode(config.Overshoot),
		parallel: config.EnableParallel,
	}

	if config.Overshoot != OvershootOff {
		fallback, err := kernel.NewDecimation2x(kernel.MethodBox, phase)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		r.fallback = fallback
	}

	return r, nil
}

// horizontalPhase maps a chroma siting value to the sub-pixel phase of the
// first output sample. Bottom-field siting is ignored: only progressive
// content is supported.
func horizontalPhase(loc ChromaLocation) int {
	switch loc {
	case LocCenter, LocTop, LocBottom:
		return 1
	case LocLeft, LocTopLeft, LocBottomLeft:
		return 0
	default:
		return 0
	}
}

// methodToKernel maps the public filter method to the kernel package's
// method identifier.
func methodToKernel(m FilterMethod) kernel.Method {
	switch m {
	case MethodTent:
		return kernel.MethodTent
	case MethodMPEG2:
		return kernel.MethodMPEG2
	case MethodWindowedSinc:
		return kernel.MethodWindowedSinc
	default:
		return kernel.MethodBox
	}
}

// Process converts the 4:4:4 input frame into the 4:2:2 output frame.
//
// The frames must agree on float-versus-integer representation, on bit
// depth when integer, and on luma plane size; any disagreement returns
// ErrFormatMismatch before a single output sample is written. The luma
// plane is copied verbatim, scalar metadata is carried over, and each
// chroma plane is filtered with the representation-appropriate path.
func (r *ChromaResampler) Process(out, in *Frame) error {
	if out.IsFloat != in.IsFloat {
		return fmt.Errorf("%w: float %v vs %v", ErrFormatMismatch, in.IsFloat, out.IsFloat)
	}
	if !in.IsFloat && out.BitDepth != in.BitDepth {
		return fmt.Errorf("%w: bit depth %d vs %d", ErrFormatMismatch, in.BitDepth, out.BitDepth)
	}
	if out.CompSize[CompY] != in.CompSize[CompY] {
		return fmt.Errorf("%w: luma plane size %d vs %d", ErrFormatMismatch, in.CompSize[CompY], out.CompSize[CompY])
	}

	out.copyMetadata(in)

	switch {
	case in.IsFloat:
		copy(out.FloatComp[CompY], in.FloatComp[CompY])
	case in.BitDepth == bitDepth8:
		copy(out.Comp[CompY], in.Comp[CompY])
	default:
		copy(out.UI16Comp[CompY], in.UI16Comp[CompY])
	}

	if r.parallel {
		var wg sync.WaitGroup
		for c := CompU; c <= CompV; c++ {
			wg.Add(1)
			go func(comp int) {
				defer wg.Done()
				r.filterChroma(out, in, comp)
			}(c)
		}
		wg.Wait()
		return nil
	}

	for c := CompU; c <= CompV; c++ {
		r.filterChroma(out, in, c)
	}
	return nil
}

// filterChroma decimates one chroma plane using the path matching the
// frame's declared representation.
func (r *ChromaResampler) filterChroma(out, in *Frame, c int) {
	width, height := out.Width[c], out.Height[c]

	switch {
	case out.IsFloat:
		engine.FilterPlaneFloat(out.FloatComp[c], in.FloatComp[c], width, height,
			r.primary, r.fallback, r.mode,
			float32(out.MinPelValue[c]), float32(out.MaxPelValue[c]))
	case out.BitDepth == bitDepth8:
		engine.FilterPlaneInt(out.Comp[c], in.Comp[c], width, height,
			r.primary, out.MinPelValue[c], out.MaxPelValue[c])
	default:
		engine.FilterPlaneInt(out.UI16Comp[c], in.UI16Comp[c], width, height,
			r.primary, out.MinPelValue[c], out.MaxPelValue[c])
	}
}
