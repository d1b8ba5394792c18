package transforms

// New444to422Default creates a converter with the smooth box filter,
// left-sited chroma and no overshoot control. This matches the most common
// toolchain default for 4:2:2 mezzanine formats.
func New444to422Default() (*ChromaResampler, error) {
	return New444to422(&Config{
		Method:      MethodBox,
		LocationTop: LocLeft,
	})
}

// New444to422Sharp creates a converter with the windowed-sinc filter and
// fallback substitution on overshoot, trading a little smoothness near hard
// edges for a sharper passband elsewhere.
func New444to422Sharp() (*ChromaResampler, error) {
	return New444to422(&Config{
		Method:      MethodWindowedSinc,
		LocationTop: LocLeft,
		Overshoot:   OvershootSubstitute,
	})
}

// NewFloatFrame allocates a float frame with normalized [0, 1] ranges.
func NewFloatFrame(width, height int, format ChromaFormat) (*Frame, error) {
	return NewFrame(width, height, format, true, 0)
}

// NewUint8Frame allocates an 8-bit full-range frame.
func NewUint8Frame(width, height int, format ChromaFormat) (*Frame, error) {
	return NewFrame(width, height, format, false, bitDepth8)
}

// NewUint16Frame allocates a 16-bit full-range frame.
func NewUint16Frame(width, height int, format ChromaFormat) (*Frame, error) {
	return NewFrame(width, height, format, false, bitDepth16)
}
