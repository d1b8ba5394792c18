package transforms

import (
	"fmt"
)

// Component indices for planar frame data.
const (
	// CompY is the luma component index.
	CompY = 0

	// CompU is the first chroma component index (Cb).
	CompU = 1

	// CompV is the second chroma component index (Cr).
	CompV = 2

	numComponents = 3
)

// ChromaFormat enumerates the supported chroma subsampling layouts.
type ChromaFormat int

const (
	// ChromaFormat444 has full-resolution chroma planes.
	ChromaFormat444 ChromaFormat = iota

	// ChromaFormat422 has horizontally halved chroma planes.
	ChromaFormat422
)

// Frame is a caller-owned planar picture buffer.
//
// Exactly one pixel representation is populated, selected by IsFloat and
// BitDepth: FloatComp for float frames, Comp for 8-bit frames, UI16Comp for
// higher integer depths. Per-component range metadata travels with the
// frame so transform stages never guess the active signal range.
//
// Frames are allocated and populated by an upstream decode or read stage
// and passed by reference into transform operations.
type Frame struct {
	// IsFloat selects the floating-point representation.
	IsFloat bool

	// BitDepth is the integer sample depth (8 or 16); ignored for float
	// frames.
	BitDepth int

	// FrameNo is the display order number assigned upstream.
	FrameNo int

	// IsAvailable reports whether the frame holds decoded pixel data.
	IsAvailable bool

	// Per-component geometry. CompSize[c] == Width[c] * Height[c].
	Width    [numComponents]int
	Height   [numComponents]int
	CompSize [numComponents]int

	// Per-component sample range bounds in the active representation.
	MinPelValue [numComponents]int
	MidPelValue [numComponents]int
	MaxPelValue [numComponents]int

	// Pixel planes; exactly one set is non-nil.
	FloatComp [numComponents][]float32
	UI16Comp  [numComponents][]uint16
	Comp      [numComponents][]uint8
}

// NewFrame allocates a frame with the given luma geometry, chroma layout
// and representation, with full-range value metadata. Float frames use a
// normalized [0, 1] range for every component.
func NewFrame(width, height int, format ChromaFormat, isFloat bool, bitDepth int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: frame size %dx%d", ErrInvalidConfig, width, height)
	}
	if format == ChromaFormat422 && width%2 != 0 {
		return nil, fmt.Errorf("%w: 4:2:2 frame width %d must be even", ErrInvalidConfig, width)
	}
	if !isFloat && bitDepth != bitDepth8 && bitDepth != bitDepth16 {
		return nil, fmt.Errorf("%w: bit depth %d (must be 8 or 16)", ErrInvalidConfig, bitDepth)
	}

	f := &Frame{
		IsFloat:  isFloat,
		BitDepth: bitDepth,
	}

	for c := CompY; c <= CompV; c++ {
		f.Width[c] = width
		f.Height[c] = height
		if c != CompY && format == ChromaFormat422 {
			f.Width[c] = width / 2
		}
		f.CompSize[c] = f.Width[c] * f.Height[c]

		if isFloat {
			f.FloatComp[c] = make([]float32, f.CompSize[c])
			f.MinPelValue[c] = 0
			f.MidPelValue[c] = 0
			f.MaxPelValue[c] = 1
		} else {
			f.MinPelValue[c] = 0
			f.MidPelValue[c] = 1 << (bitDepth - 1)
			f.MaxPelValue[c] = 1<<bitDepth - 1
			if bitDepth == bitDepth8 {
				f.Comp[c] = make([]uint8, f.CompSize[c])
			} else {
				f.UI16Comp[c] = make([]uint16, f.CompSize[c])
			}
		}
	}

	return f, nil
}

// copyMetadata carries the scalar frame metadata from in to out.
func (f *Frame) copyMetadata(in *Frame) {
	f.FrameNo = in.FrameNo
	f.IsAvailable = true
	for c := CompY; c <= CompV; c++ {
		f.MinPelValue[c] = in.MinPelValue[c]
		f.MidPelValue[c] = in.MidPelValue[c]
		f.MaxPelValue[c] = in.MaxPelValue[c]
	}
}
