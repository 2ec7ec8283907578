package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistics holds the descriptive statistics of a sensor signal. All
// fields are computed at full precision; use Rounded for display values.
type Statistics struct {
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	RMS        float64 `json:"rms"`          // Root mean square
	Peak       float64 `json:"peak"`         // max(|min|, |max|)
	PeakToPeak float64 `json:"peak_to_peak"` // max - min
	NumSamples int     `json:"num_samples"`
}

// Describe computes descriptive statistics for the signal. An empty
// signal is an error: there is nothing meaningful to report and silently
// returning zeros would be indistinguishable from a flat-line sensor.
func Describe(signal []float64) (*Statistics, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("empty signal")
	}

	minVal := floats.Min(signal)
	maxVal := floats.Max(signal)
	sumSquares := floats.Dot(signal, signal)

	mean := stat.Mean(signal, nil)

	// Sample standard deviation; undefined for a single sample.
	stdDev := 0.0
	if len(signal) > 1 {
		stdDev = stat.StdDev(signal, nil)
	}

	return &Statistics{
		Mean:       mean,
		StdDev:     stdDev,
		Min:        minVal,
		Max:        maxVal,
		RMS:        math.Sqrt(sumSquares / float64(len(signal))),
		Peak:       math.Max(math.Abs(minVal), math.Abs(maxVal)),
		PeakToPeak: maxVal - minVal,
		NumSamples: len(signal),
	}, nil
}

// Rounded returns a copy with every value rounded to the given number of
// decimal places. Intended for summary display only; computations should
// always use the full-precision fields.
func (s *Statistics) Rounded(places int) *Statistics {
	return &Statistics{
		Mean:       roundTo(s.Mean, places),
		StdDev:     roundTo(s.StdDev, places),
		Min:        roundTo(s.Min, places),
		Max:        roundTo(s.Max, places),
		RMS:        roundTo(s.RMS, places),
		Peak:       roundTo(s.Peak, places),
		PeakToPeak: roundTo(s.PeakToPeak, places),
		NumSamples: s.NumSamples,
	}
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
