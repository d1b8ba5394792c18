package transforms

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew444to422_Validate(t *testing.T) {
	_, err := New444to422(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New444to422(&Config{Method: FilterMethod(99)})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New444to422(&Config{LocationTop: ChromaLocation(9)})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New444to422(&Config{Overshoot: OvershootMode(7)})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	conv, err := New444to422(&Config{Method: MethodTent, LocationTop: LocCenter})
	require.NoError(t, err)
	assert.NotNil(t, conv)
}

func TestProcess_FloatPairAverage(t *testing.T) {
	// A 4x2 float 4:4:4 frame whose chroma rows are [0 0 1 1] becomes a
	// 2x2 4:2:2 frame holding the local pair averages, clamped to [0, 1].
	conv, err := New444to422Default()
	require.NoError(t, err)

	in, err := NewFloatFrame(4, 2, ChromaFormat444)
	require.NoError(t, err)
	out, err := NewFloatFrame(4, 2, ChromaFormat422)
	require.NoError(t, err)

	for c := CompU; c <= CompV; c++ {
		copy(in.FloatComp[c], []float32{0, 0, 1, 1, 0, 0, 1, 1})
	}

	require.NoError(t, conv.Process(out, in))

	for c := CompU; c <= CompV; c++ {
		assert.Equal(t, 2, out.Width[c])
		for i, want := range []float32{0, 1, 0, 1} {
			assert.InDelta(t, want, out.FloatComp[c][i], 1e-6, "comp %d sample %d", c, i)
		}
	}
}

func TestProcess_FormatMismatchAbortsBeforeWriting(t *testing.T) {
	conv, err := New444to422Default()
	require.NoError(t, err)

	in, err := NewFloatFrame(4, 2, ChromaFormat444)
	require.NoError(t, err)
	out, err := NewUint8Frame(4, 2, ChromaFormat422)
	require.NoError(t, err)

	in.FrameNo = 7
	for i := range in.FloatComp[CompU] {
		in.FloatComp[CompU][i] = 0.5
	}

	err = conv.Process(out, in)
	require.ErrorIs(t, err, ErrFormatMismatch)

	// Nothing may have been written: no metadata, no pixels.
	assert.False(t, out.IsAvailable)
	assert.Zero(t, out.FrameNo)
	for _, v := range out.Comp[CompU] {
		assert.Zero(t, v)
	}
}

func TestProcess_BitDepthMismatch(t *testing.T) {
	conv, err := New444to422Default()
	require.NoError(t, err)

	in, err := NewUint16Frame(4, 2, ChromaFormat444)
	require.NoError(t, err)
	out, err := NewUint8Frame(4, 2, ChromaFormat422)
	require.NoError(t, err)

	assert.ErrorIs(t, conv.Process(out, in), ErrFormatMismatch)
}

func TestProcess_LumaSizeMismatch(t *testing.T) {
	conv, err := New444to422Default()
	require.NoError(t, err)

	in, err := NewFloatFrame(4, 2, ChromaFormat444)
	require.NoError(t, err)
	out, err := NewFloatFrame(8, 2, ChromaFormat422)
	require.NoError(t, err)

	assert.ErrorIs(t, conv.Process(out, in), ErrFormatMismatch)
}

func TestProcess_CopiesLumaAndMetadata(t *testing.T) {
	conv, err := New444to422Default()
	require.NoError(t, err)

	in, err := NewUint16Frame(4, 2, ChromaFormat444)
	require.NoError(t, err)
	out, err := NewUint16Frame(4, 2, ChromaFormat422)
	require.NoError(t, err)

	in.FrameNo = 42
	in.MinPelValue[CompY] = 64
	in.MaxPelValue[CompY] = 940
	for i := range in.UI16Comp[CompY] {
		in.UI16Comp[CompY][i] = uint16(100 + i)
	}

	require.NoError(t, conv.Process(out, in))

	assert.Equal(t, 42, out.FrameNo)
	assert.True(t, out.IsAvailable)
	assert.Equal(t, 64, out.MinPelValue[CompY])
	assert.Equal(t, 940, out.MaxPelValue[CompY])
	assert.Equal(t, in.UI16Comp[CompY], out.UI16Comp[CompY])
}

func TestProcess_Uint8Chroma(t *testing.T) {
	conv, err := New444to422Default()
	require.NoError(t, err)

	in, err := NewUint8Frame(4, 1, ChromaFormat444)
	require.NoError(t, err)
	out, err := NewUint8Frame(4, 1, ChromaFormat422)
	require.NoError(t, err)

	copy(in.Comp[CompU], []uint8{10, 20, 30, 50})
	copy(in.Comp[CompV], []uint8{200, 200, 0, 0})

	require.NoError(t, conv.Process(out, in))

	assert.Equal(t, []uint8{15, 40}, out.Comp[CompU])
	assert.Equal(t, []uint8{200, 0}, out.Comp[CompV])
}

func TestProcess_ParallelMatchesSequential(t *testing.T) {
	const width, height = 32, 8
	rng := rand.New(rand.NewSource(3))

	makeInput := func() *Frame {
		f, err := NewFloatFrame(width, height, ChromaFormat444)
		require.NoError(t, err)
		for c := CompY; c <= CompV; c++ {
			for i := range f.FloatComp[c] {
				f.FloatComp[c][i] = rng.Float32()
			}
		}
		return f
	}
	in := makeInput()

	run := func(parallel bool) *Frame {
		conv, err := New444to422(&Config{
			Method:         MethodWindowedSinc,
			LocationTop:    LocLeft,
			Overshoot:      OvershootSubstitute,
			EnableParallel: parallel,
		})
		require.NoError(t, err)

		out, err := NewFloatFrame(width, height, ChromaFormat422)
		require.NoError(t, err)
		require.NoError(t, conv.Process(out, in))
		return out
	}

	sequential := run(false)
	parallel := run(true)

	for c := CompY; c <= CompV; c++ {
		assert.Equal(t, sequential.FloatComp[c], parallel.FloatComp[c], "comp %d", c)
	}
}

func TestProcess_ReusableAcrossFrames(t *testing.T) {
	// One converter instance processes many frame pairs; no per-call state
	// may leak between frames.
	conv, err := New444to422Sharp()
	require.NoError(t, err)

	in, err := NewFloatFrame(8, 2, ChromaFormat444)
	require.NoError(t, err)
	for i := range in.FloatComp[CompU] {
		in.FloatComp[CompU][i] = float32(i%4) / 4
	}

	first, err := NewFloatFrame(8, 2, ChromaFormat422)
	require.NoError(t, err)
	require.NoError(t, conv.Process(first, in))

	second, err := NewFloatFrame(8, 2, ChromaFormat422)
	require.NoError(t, err)
	require.NoError(t, conv.Process(second, in))

	assert.Equal(t, first.FloatComp[CompU], second.FloatComp[CompU])
}

func TestHorizontalPhase_SitingTable(t *testing.T) {
	// Even siting values are interstitial (phase 0), odd values co-sited
	// (phase 1); bottom-field siting never participates.
	wantPhases := map[ChromaLocation]int{
		LocLeft:       0,
		LocCenter:     1,
		LocTopLeft:    0,
		LocTop:        1,
		LocBottomLeft: 0,
		LocBottom:     1,
	}

	for loc, want := range wantPhases {
		assert.Equal(t, want, horizontalPhase(loc), "location %d", loc)
	}
}
