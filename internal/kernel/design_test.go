package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhdr/go-pixel-transforms/internal/testutil"
)

func TestDesignWindowedSinc2x_Phase0(t *testing.T) {
	k, err := designWindowedSinc2x(0)
	require.NoError(t, err)

	assert.Equal(t, sincTapsPhase0, k.Taps)
	assert.Equal(t, sincTapsPhase0/2-1, k.CenterOffset)
	assert.True(t, k.Clip)

	testutil.AssertSymmetric(t, k.FloatCoeffs, testutil.DefaultTolerance)
	testutil.AssertNoNaNOrInf(t, k.FloatCoeffs)

	// Unit DC in both encodings.
	assert.InDelta(t, 1.0, k.FloatDCGain(), testutil.DefaultTolerance)
	assert.Equal(t, int32(1)<<sincFixedShift, k.FixedDCSum())
}

func TestDesignWindowedSinc2x_Phase1(t *testing.T) {
	k, err := designWindowedSinc2x(1)
	require.NoError(t, err)

	assert.Equal(t, sincTapsPhase1, k.Taps)
	assert.Equal(t, (sincTapsPhase1-1)/2, k.CenterOffset)

	testutil.AssertSymmetric(t, k.FloatCoeffs, testutil.DefaultTolerance)

	// The co-sited kernel peaks at its center tap.
	center := k.FloatCoeffs[k.Taps/2]
	for i, c := range k.FloatCoeffs {
		if i != k.Taps/2 {
			assert.Less(t, c, center, "tap %d should be below the center tap", i)
		}
	}

	assert.Equal(t, int32(1)<<sincFixedShift, k.FixedDCSum())
}

func TestQuantizeCoeffs_ExactDCSum(t *testing.T) {
	// Coefficients that do not round to an exact power-of-two sum get the
	// residual folded into the center tap.
	coeffs := []float64{0.1001, 0.2002, 0.3994, 0.2002, 0.1001}
	fixed := quantizeCoeffs(coeffs, 12)

	var sum int32
	for _, c := range fixed {
		sum += c
	}
	assert.Equal(t, int32(1)<<12, sum)
}
