package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myfanview/myfanview.github.io/algorithms/preprocess"
)

func generateSine(amplitude, freq, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
	}
	return out
}

func peakBin(magnitude []float64) int {
	peak := 0
	for i, m := range magnitude {
		if m > magnitude[peak] {
			peak = i
		}
	}
	return peak
}

func TestForward_Validation(t *testing.T) {
	f := NewFFT()

	_, err := f.Forward(nil, 100)
	assert.Error(t, err)

	_, err = f.Forward([]float64{1, 2, 3}, 0)
	assert.Error(t, err)

	_, err = f.Forward([]float64{1, 2, 3}, -44100)
	assert.Error(t, err)
}

func TestForward_SinusoidPeak(t *testing.T) {
	// 256 samples of sin(2*pi*5*t) at 100 Hz: the peak must land within
	// one bin (100/256 Hz) of 5 Hz.
	sampleRate := 100.0
	signal := generateSine(1.0, 5, sampleRate, 256)

	result, err := NewFFT().Forward(signal, sampleRate)
	require.NoError(t, err)

	assert.Equal(t, 256, result.FFTLength)
	assert.InDelta(t, sampleRate/256, result.FrequencyResolution, 1e-12)

	require.Len(t, result.Magnitude, 128)
	require.Len(t, result.Phase, 128)
	require.Len(t, result.Real, 128)
	require.Len(t, result.Imaginary, 128)
	require.Len(t, result.Frequencies, 128)

	peak := peakBin(result.Magnitude)
	assert.InDelta(t, 5.0, result.Frequencies[peak], result.FrequencyResolution)
}

func TestForward_ZeroPadsToPowerOfTwo(t *testing.T) {
	signal := generateSine(1.0, 10, 100, 300)

	result, err := NewFFT().Forward(signal, 100)
	require.NoError(t, err)

	assert.Equal(t, 512, result.FFTLength)
	assert.Len(t, result.Magnitude, 256)
}

func TestForward_MagnitudeMatchesComponents(t *testing.T) {
	signal := generateSine(2.0, 8, 64, 64)

	result, err := NewFFT().Forward(signal, 64)
	require.NoError(t, err)

	for i := range result.Magnitude {
		re := result.Real[i]
		im := result.Imaginary[i]
		assert.InDeltaf(t, math.Sqrt(re*re+im*im), result.Magnitude[i], 1e-9, "bin %d", i)
		assert.InDeltaf(t, math.Atan2(im, re), result.Phase[i], 1e-9, "bin %d", i)
	}
}

func TestRoundTrip(t *testing.T) {
	f := NewFFT()
	signal := generateSine(1.0, 7, 100, 300) // padded to 512 internally

	spectrum := f.ForwardComplex(signal)
	reconstructed := f.Inverse(spectrum)

	padded := preprocess.ZeroPad(signal, preprocess.NextPowerOfTwo(len(signal)))
	require.Len(t, reconstructed, len(padded))

	for i := range padded {
		assert.InDeltaf(t, padded[i], real(reconstructed[i]), 1e-9, "sample %d", i)
		assert.InDeltaf(t, 0.0, imag(reconstructed[i]), 1e-9, "sample %d", i)
	}
}

func TestInverseReal(t *testing.T) {
	f := NewFFT()
	signal := []float64{1, -2, 3, -4}

	out := f.InverseReal(f.ForwardComplex(signal))
	require.Len(t, out, 4)
	for i := range signal {
		assert.InDelta(t, signal[i], out[i], 1e-9)
	}
}

func TestEmptyTransforms(t *testing.T) {
	f := NewFFT()
	assert.Empty(t, f.ForwardComplex(nil))
	assert.Empty(t, f.Inverse(nil))
	assert.Empty(t, f.InverseReal(nil))
}

func TestFrequencyAxis(t *testing.T) {
	freqs := FrequencyAxis(256, 100)
	require.Len(t, freqs, 128)

	assert.Equal(t, 0.0, freqs[0])
	assert.InDelta(t, 100.0/256, freqs[1], 1e-12)
	assert.InDelta(t, 127*100.0/256, freqs[127], 1e-12)
}

func TestToDecibels_Floor(t *testing.T) {
	// Magnitudes below the floor are clamped: never -Inf
	assert.InDelta(t, -200.0, ToDecibels(0), 1e-9)
	assert.InDelta(t, -200.0, ToDecibels(1e-15), 1e-9)
	assert.InDelta(t, 0.0, ToDecibels(1), 1e-9)
	assert.InDelta(t, 20.0, ToDecibels(10), 1e-9)
}
