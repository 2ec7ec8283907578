package wavelet

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/myfanview/myfanview.github.io/algorithms/preprocess"
	"github.com/myfanview/myfanview.github.io/logging"
)

// CWT provides the Continuous Wavelet Transform with a complex Morlet
// mother wavelet, producing a time-scale magnitude surface.
type CWT struct {
	logger logging.Logger
}

// CWTOptions configures a transform. Zero values are not meaningful;
// start from DefaultCWTOptions and override what you need.
type CWTOptions struct {
	Omega0        float64             `json:"omega0"`         // Morlet center frequency, default 5
	Sigma         float64             `json:"sigma"`          // Gaussian envelope width, default 1
	EdgeMode      preprocess.EdgeMode `json:"edge_mode"`      // Boundary handling, default EdgeNone
	FilterNyquist bool                `json:"filter_nyquist"` // Drop scales mapping above Nyquist, default true
}

// DefaultCWTOptions returns the standard analysis configuration
func DefaultCWTOptions() *CWTOptions {
	return &CWTOptions{
		Omega0:        5.0,
		Sigma:         1.0,
		EdgeMode:      preprocess.EdgeNone,
		FilterNyquist: true,
	}
}

// CWTResult holds the transform output. Coefficients is scale-major:
// Coefficients[i][t] is the magnitude at scale Scales[i] (frequency
// Frequencies[i]) and sample index t.
type CWTResult struct {
	Coefficients [][]float64         `json:"coefficients"` // Scale x Time magnitude matrix
	Scales       []float64           `json:"scales"`
	Frequencies  []float64           `json:"frequencies"`
	Omega0       float64             `json:"omega0"`
	EdgeMode     preprocess.EdgeMode `json:"edge_mode"`
}

// NewCWT creates a new CWT engine
func NewCWT() *CWT {
	return &CWT{
		logger: logging.WithFields(logging.Fields{
			"component": "cwt",
		}),
	}
}

// DefaultScales returns the built-in scale set: a geometric progression
// with ratio 1.2 from 1 up to 64, floored to integers and deduplicated.
// The list is strictly ascending.
func DefaultScales() []float64 {
	var scales []float64
	last := 0
	for s := 1.0; s <= 64; s *= 1.2 {
		v := int(math.Floor(s))
		if v > last {
			scales = append(scales, float64(v))
			last = v
		}
	}
	return scales
}

// Compute runs the transform. Pass nil scales for the default set. Scales
// mapping to frequencies above Nyquist are dropped when FilterNyquist is
// set; if that leaves no scale the transform fails rather than returning
// a degenerate surface.
//
// The coefficient at (scale, t) is a direct discrete convolution over a
// window of half-width floor(scale*5*sigma) samples around t, each tap
// weighted by dt/sqrt(scale). Scale rows are independent and computed in
// parallel.
func (c *CWT) Compute(signal []float64, scales []float64, sampleRate float64, opts *CWTOptions) (*CWTResult, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("empty signal")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}

	if opts == nil {
		opts = DefaultCWTOptions()
	}
	if opts.Omega0 <= 0 {
		return nil, fmt.Errorf("omega0 must be positive, got %g", opts.Omega0)
	}
	if opts.Sigma <= 0 {
		return nil, fmt.Errorf("sigma must be positive, got %g", opts.Sigma)
	}

	if scales == nil {
		scales = DefaultScales()
	}
	for i, s := range scales {
		if s <= 0 {
			return nil, fmt.Errorf("scales must be positive, got %g at index %d", s, i)
		}
		if i > 0 && s <= scales[i-1] {
			return nil, fmt.Errorf("scales must be strictly ascending")
		}
	}

	mother := NewMorlet(opts.Omega0, opts.Sigma)

	// Nyquist filtering: a scale whose center frequency exceeds
	// sampleRate/2 cannot be represented and only aliases.
	nyquist := sampleRate / 2
	kept := make([]float64, 0, len(scales))
	frequencies := make([]float64, 0, len(scales))
	dropped := 0
	for _, s := range scales {
		f := mother.CenterFrequency(s, sampleRate)
		if opts.FilterNyquist && f > nyquist {
			dropped++
			continue
		}
		kept = append(kept, s)
		frequencies = append(frequencies, f)
	}

	if len(kept) == 0 {
		return nil, fmt.Errorf("all %d scales rejected by Nyquist filtering at %g Hz", len(scales), nyquist)
	}
	if dropped > 0 {
		c.logger.Debug("dropped scales above Nyquist", logging.Fields{
			"dropped": dropped,
			"nyquist": nyquist,
		})
	}

	// Pad by the support of the widest wavelet so every kept scale has a
	// full convolution window at the boundaries.
	maxScale := kept[len(kept)-1]
	padded, pad := preprocess.PadEdges(signal, mother.SupportHalfWidth(maxScale), opts.EdgeMode)

	dt := 1.0 / sampleRate
	coefficients := make([][]float64, len(kept))

	numWorkers := min(runtime.NumCPU(), len(kept))
	jobs := make(chan int, len(kept))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				coefficients[idx] = c.convolveScale(padded, pad, len(signal), kept[idx], dt, mother)
			}
		}()
	}

	for idx := range kept {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return &CWTResult{
		Coefficients: coefficients,
		Scales:       kept,
		Frequencies:  frequencies,
		Omega0:       opts.Omega0,
		EdgeMode:     opts.EdgeMode,
	}, nil
}

// convolveScale computes one magnitude row of the surface
func (c *CWT) convolveScale(padded []float64, pad, signalLength int, scale, dt float64, mother *Morlet) []float64 {
	half := mother.SupportHalfWidth(scale)
	weight := dt / math.Sqrt(scale)

	// The wavelet taps depend only on the offset, so precompute them once
	// per scale instead of once per output sample.
	taps := make([]complex128, 2*half+1)
	for k := -half; k <= half; k++ {
		taps[k+half] = mother.Evaluate(float64(k) / scale)
	}

	row := make([]float64, signalLength)
	for t := 0; t < signalLength; t++ {
		center := t + pad

		lo := center - half
		if lo < 0 {
			lo = 0
		}
		hi := center + half
		if hi > len(padded)-1 {
			hi = len(padded) - 1
		}

		var re, im float64
		for j := lo; j <= hi; j++ {
			tap := taps[j-center+half]
			re += padded[j] * real(tap)
			im += padded[j] * imag(tap)
		}

		re *= weight
		im *= weight
		row[t] = math.Sqrt(re*re + im*im)
	}

	return row
}
