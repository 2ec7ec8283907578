package preprocess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveDC(t *testing.T) {
	signal := []float64{2001, 2003, 1999, 2005, 1992}
	out := RemoveDC(signal)

	require.Len(t, out, len(signal))

	sum := 0.0
	for _, v := range out {
		sum += v
	}
	assert.InDelta(t, 0.0, sum/float64(len(out)), 1e-12, "mean should be removed")

	// Input untouched
	assert.Equal(t, 2001.0, signal[0])
}

func TestRemoveDC_Empty(t *testing.T) {
	out := RemoveDC(nil)
	assert.Empty(t, out)
}

func TestDetrend_RemovesLine(t *testing.T) {
	// Pure line: detrending should leave nearly nothing
	signal := make([]float64, 100)
	for i := range signal {
		signal[i] = 3.5*float64(i) + 42.0
	}

	out := Detrend(signal)
	for i, v := range out {
		assert.InDeltaf(t, 0.0, v, 1e-9, "residual at %d", i)
	}
}

func TestDetrend_Idempotent(t *testing.T) {
	signal := make([]float64, 200)
	for i := range signal {
		signal[i] = 0.25*float64(i) + math.Sin(2*math.Pi*3*float64(i)/100)
	}

	once := Detrend(signal)
	twice := Detrend(once)

	for i := range once {
		assert.InDelta(t, once[i], twice[i], 1e-9)
	}
}

func TestDetrend_ShortSignal(t *testing.T) {
	assert.Equal(t, []float64{7.0}, Detrend([]float64{7.0}))
	assert.Empty(t, Detrend(nil))
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 256: 256, 257: 512, 1000: 1024}
	for in, want := range cases {
		assert.Equalf(t, want, NextPowerOfTwo(in), "NextPowerOfTwo(%d)", in)
	}
}

func TestZeroPad(t *testing.T) {
	out := ZeroPad([]float64{1, 2, 3}, 8)
	require.Len(t, out, 8)
	assert.Equal(t, []float64{1, 2, 3, 0, 0, 0, 0, 0}, out)

	// Shorter target keeps the signal intact
	assert.Equal(t, []float64{1, 2, 3}, ZeroPad([]float64{1, 2, 3}, 2))
}

func TestPadEdges_None(t *testing.T) {
	signal := []float64{1, 2, 3}
	out, pad := PadEdges(signal, 4, EdgeNone)
	assert.Equal(t, signal, out)
	assert.Equal(t, 0, pad)
}

func TestPadEdges_Zero(t *testing.T) {
	out, pad := PadEdges([]float64{1, 2, 3}, 2, EdgeZero)
	assert.Equal(t, 2, pad)
	assert.Equal(t, []float64{0, 0, 1, 2, 3, 0, 0}, out)
}

func TestPadEdges_Symmetric(t *testing.T) {
	// Mirror including the boundary sample: [a b c] -> [b a | a b c | c b]
	out, pad := PadEdges([]float64{1, 2, 3}, 2, EdgeSymmetric)
	assert.Equal(t, 2, pad)
	assert.Equal(t, []float64{2, 1, 1, 2, 3, 3, 2}, out)
}

func TestPadEdges_Reflect(t *testing.T) {
	// Mirror excluding the boundary sample: [a b c] -> [c b | a b c | b a]
	out, pad := PadEdges([]float64{1, 2, 3}, 2, EdgeReflect)
	assert.Equal(t, 2, pad)
	assert.Equal(t, []float64{3, 2, 1, 2, 3, 2, 1}, out)
}

func TestPadEdges_ClampsMirrorPad(t *testing.T) {
	// A single reflection cannot extend further than the signal itself
	out, pad := PadEdges([]float64{1, 2}, 10, EdgeSymmetric)
	assert.Equal(t, 2, pad)
	assert.Len(t, out, 6)

	out, pad = PadEdges([]float64{1, 2}, 10, EdgeReflect)
	assert.Equal(t, 1, pad)
	assert.Len(t, out, 4)
}

func TestEdgeModeString(t *testing.T) {
	assert.Equal(t, "none", EdgeNone.String())
	assert.Equal(t, "zero", EdgeZero.String())
	assert.Equal(t, "symmetric", EdgeSymmetric.String())
	assert.Equal(t, "reflect", EdgeReflect.String())
}
