package preprocess

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RemoveDC subtracts the arithmetic mean from every sample, removing the
// DC offset of the signal. The input is never modified; a new slice is
// returned. Useful before spectral analysis of sensor series that sit on
// a large constant baseline (fan RPM around its setpoint, temperatures).
func RemoveDC(signal []float64) []float64 {
	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}

	copy(out, signal)
	floats.AddConst(-stat.Mean(signal, nil), out)
	return out
}

// Detrend removes the best-fit line (ordinary least squares over
// (index, value) pairs) from the signal, eliminating linear drift such as
// slow thermal ramps. Signals shorter than two samples have no defined
// slope and are returned as an unchanged copy.
func Detrend(signal []float64) []float64 {
	out := make([]float64, len(signal))
	copy(out, signal)

	if len(signal) < 2 {
		return out
	}

	indices := make([]float64, len(signal))
	for i := range indices {
		indices[i] = float64(i)
	}

	intercept, slope := stat.LinearRegression(indices, signal, nil, false)
	for i := range out {
		out[i] -= intercept + slope*float64(i)
	}

	return out
}
