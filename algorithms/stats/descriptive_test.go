package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateSine(amplitude, freq, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
	}
	return out
}

func TestDescribe_EmptySignal(t *testing.T) {
	result, err := Describe(nil)
	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestDescribe_Sinusoid(t *testing.T) {
	// 256 samples of sin(2*pi*5*t) at 100 Hz
	signal := generateSine(1.0, 5, 100, 256)

	s, err := Describe(signal)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, s.Mean, 0.02)
	assert.InDelta(t, 1.0, s.Peak, 1e-9)
	assert.InDelta(t, 1.0/math.Sqrt2, s.RMS, 0.01)
	assert.InDelta(t, 2.0, s.PeakToPeak, 1e-6)
	assert.Equal(t, 256, s.NumSamples)
}

func TestDescribe_ConstantSignal(t *testing.T) {
	signal := []float64{42, 42, 42, 42}

	s, err := Describe(signal)
	require.NoError(t, err)

	assert.Equal(t, 42.0, s.Mean)
	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, 42.0, s.Min)
	assert.Equal(t, 42.0, s.Max)
	assert.Equal(t, 42.0, s.RMS)
	assert.Equal(t, 42.0, s.Peak)
	assert.Equal(t, 0.0, s.PeakToPeak)
}

func TestDescribe_SingleSample(t *testing.T) {
	s, err := Describe([]float64{-3})
	require.NoError(t, err)

	assert.Equal(t, -3.0, s.Mean)
	assert.Equal(t, 0.0, s.StdDev, "std dev of a single sample is defined as zero")
	assert.Equal(t, 3.0, s.Peak)
}

func TestDescribe_PeakUsesAbsoluteValue(t *testing.T) {
	s, err := Describe([]float64{-5, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, 5.0, s.Peak)
	assert.Equal(t, 7.0, s.PeakToPeak)
}

func TestRounded(t *testing.T) {
	s := &Statistics{
		Mean:       1.23456,
		StdDev:     0.98765,
		RMS:        2.71828,
		NumSamples: 10,
	}

	r := s.Rounded(2)
	assert.Equal(t, 1.23, r.Mean)
	assert.Equal(t, 0.99, r.StdDev)
	assert.Equal(t, 2.72, r.RMS)
	assert.Equal(t, 10, r.NumSamples)

	// Original untouched
	assert.Equal(t, 1.23456, s.Mean)
}
