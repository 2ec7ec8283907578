package spectral

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/myfanview/myfanview.github.io/algorithms/preprocess"
)

// MagnitudeFloor is the smallest magnitude fed into a log10 conversion.
// Anything below it is clamped so dB spectra never contain -Inf.
const MagnitudeFloor = 1e-10

// FFT provides the forward and inverse Fourier transforms every other
// engine builds on. Both directions run in O(N log N); there is no
// quadratic fallback path.
type FFT struct {
	// Stateless - both directions are pure functions
}

// FFTResult holds the positive-frequency half spectrum of a real signal.
// All slices are co-indexed: Magnitude[i], Phase[i], Real[i], Imaginary[i]
// all describe the frequency Frequencies[i].
type FFTResult struct {
	Magnitude           []float64 `json:"magnitude"`
	Phase               []float64 `json:"phase"`
	Real                []float64 `json:"real"`
	Imaginary           []float64 `json:"imaginary"`
	Frequencies         []float64 `json:"frequencies"`
	FFTLength           int       `json:"fft_length"`           // Padded transform length N
	FrequencyResolution float64   `json:"frequency_resolution"` // sampleRate / N (Hz/bin)
}

// NewFFT creates a new FFT engine
func NewFFT() *FFT {
	return &FFT{}
}

// Forward computes the spectrum of a real signal. The signal is
// zero-padded to the next power of two before the transform and only the
// first N/2 bins (DC up to just below Nyquist) are returned.
func (f *FFT) Forward(signal []float64, sampleRate float64) (*FFTResult, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("empty signal")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}

	spectrum := f.ForwardComplex(signal)
	n := len(spectrum)
	bins := n / 2
	if bins == 0 {
		bins = 1
	}

	result := &FFTResult{
		Magnitude:           make([]float64, bins),
		Phase:               make([]float64, bins),
		Real:                make([]float64, bins),
		Imaginary:           make([]float64, bins),
		Frequencies:         FrequencyAxis(n, sampleRate),
		FFTLength:           n,
		FrequencyResolution: sampleRate / float64(n),
	}

	for i := 0; i < bins; i++ {
		re := real(spectrum[i])
		im := imag(spectrum[i])
		result.Real[i] = re
		result.Imaginary[i] = im
		result.Magnitude[i] = math.Sqrt(re*re + im*im)
		result.Phase[i] = math.Atan2(im, re)
	}

	return result, nil
}

// ForwardComplex computes the full complex spectrum of the zero-padded
// signal. This is the input expected by Inverse and by the Hilbert mask.
func (f *FFT) ForwardComplex(signal []float64) []complex128 {
	if len(signal) == 0 {
		return []complex128{}
	}

	padded := preprocess.ZeroPad(signal, preprocess.NextPowerOfTwo(len(signal)))
	return fft.FFTReal(padded)
}

// Inverse computes the inverse transform of a complex spectrum with 1/N
// normalization, exactly undoing ForwardComplex.
func (f *FFT) Inverse(spectrum []complex128) []complex128 {
	if len(spectrum) == 0 {
		return []complex128{}
	}

	return fft.IFFT(spectrum)
}

// InverseReal computes the inverse transform and keeps the real part only
func (f *FFT) InverseReal(spectrum []complex128) []float64 {
	result := f.Inverse(spectrum)
	realResult := make([]float64, len(result))

	for i, val := range result {
		realResult[i] = real(val)
	}

	return realResult
}

// FrequencyAxis returns the physical frequency of each positive bin:
// freq[i] = i * sampleRate / fftLength for i in [0, fftLength/2).
func FrequencyAxis(fftLength int, sampleRate float64) []float64 {
	bins := fftLength / 2
	if bins == 0 {
		bins = 1
	}

	freqs := make([]float64, bins)
	for i := range freqs {
		freqs[i] = float64(i) * sampleRate / float64(fftLength)
	}

	return freqs
}

// ToDecibels converts a linear magnitude to dB, clamping near-zero values
// at MagnitudeFloor first.
func ToDecibels(magnitude float64) float64 {
	return 20 * math.Log10(math.Max(magnitude, MagnitudeFloor))
}
