// Package analysis exposes the signal-processing engine behind the
// myfanview dashboard as a single surface. The dashboard hands over one
// sensor's value sequence plus its sample rate and renders whatever
// result record comes back; everything here is a pure, synchronous
// function of its inputs.
package analysis

import (
	"github.com/myfanview/myfanview.github.io/algorithms/preprocess"
	"github.com/myfanview/myfanview.github.io/algorithms/spectral"
	"github.com/myfanview/myfanview.github.io/algorithms/stats"
	"github.com/myfanview/myfanview.github.io/algorithms/temporal"
	"github.com/myfanview/myfanview.github.io/algorithms/wavelet"
	"github.com/myfanview/myfanview.github.io/algorithms/windowing"
	"github.com/myfanview/myfanview.github.io/logging"
)

// SignalAnalyzer bundles the transform engines behind one API. It holds
// no per-signal state: every method is safe to call concurrently and
// repeatedly with identical results.
type SignalAnalyzer struct {
	fft     *spectral.FFT
	stft    *spectral.STFT
	cwt     *wavelet.CWT
	hilbert *temporal.Hilbert
	logger  logging.Logger
}

// NewSignalAnalyzer creates a new analyzer
func NewSignalAnalyzer() *SignalAnalyzer {
	return &SignalAnalyzer{
		fft:     spectral.NewFFT(),
		stft:    spectral.NewSTFT(),
		cwt:     wavelet.NewCWT(),
		hilbert: temporal.NewHilbert(),
		logger: logging.WithFields(logging.Fields{
			"component": "signal_analyzer",
		}),
	}
}

// Describe computes descriptive statistics for the signal
func (a *SignalAnalyzer) Describe(signal []float64) (*stats.Statistics, error) {
	return stats.Describe(signal)
}

// RemoveDC returns the signal with its mean subtracted
func (a *SignalAnalyzer) RemoveDC(signal []float64) []float64 {
	return preprocess.RemoveDC(signal)
}

// Detrend returns the signal with its least-squares line removed
func (a *SignalAnalyzer) Detrend(signal []float64) []float64 {
	return preprocess.Detrend(signal)
}

// FFT computes the positive-frequency amplitude spectrum
func (a *SignalAnalyzer) FFT(signal []float64, sampleRate float64) (*spectral.FFTResult, error) {
	return a.fft.Forward(signal, sampleRate)
}

// STFT computes a dB spectrogram. An empty windowType selects Hann.
func (a *SignalAnalyzer) STFT(signal []float64, windowSize, hopSize int, sampleRate float64, windowType windowing.WindowType) (*spectral.STFTResult, error) {
	return a.stft.Compute(signal, windowSize, hopSize, sampleRate, windowType)
}

// SuggestSTFTParameters sizes an STFT from an expected fundamental
// frequency; pass expectedFrequency <= 0 when unknown.
func (a *SignalAnalyzer) SuggestSTFTParameters(signalLength int, sampleRate, expectedFrequency float64) (windowSize, hopSize int, err error) {
	return a.stft.SuggestParameters(signalLength, sampleRate, expectedFrequency)
}

// CWT computes a time-scale magnitude surface with a complex Morlet
// wavelet. Pass nil scales and nil options for the defaults.
func (a *SignalAnalyzer) CWT(signal, scales []float64, sampleRate float64, opts *wavelet.CWTOptions) (*wavelet.CWTResult, error) {
	return a.cwt.Compute(signal, scales, sampleRate, opts)
}

// Hilbert computes the analytic signal and its amplitude envelope
func (a *SignalAnalyzer) Hilbert(signal []float64, sampleRate float64) (*temporal.HilbertResult, error) {
	return a.hilbert.Compute(signal, sampleRate)
}
