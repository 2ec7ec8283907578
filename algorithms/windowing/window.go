package windowing

import (
	"fmt"
)

// WindowType identifies a window function by name
type WindowType string

const (
	WindowRectangular WindowType = "rectangular"
	WindowHann        WindowType = "hann"
	WindowHamming     WindowType = "hamming"
	WindowBlackman    WindowType = "blackman"
	WindowKaiser      WindowType = "kaiser"
)

// DefaultKaiserBeta is the Kaiser shape parameter used when none is given.
// 8.6 keeps sidelobes below roughly -90 dB, a good default for diagnosing
// weak bearing tones next to the strong rotational fundamental.
const DefaultKaiserBeta = 8.6

// Window is the interface shared by all window generators
type Window interface {
	// Apply multiplies the signal by the window into a new slice
	Apply(signal []float64) []float64

	// ApplyInPlace multiplies the signal by the window in-place
	ApplyInPlace(signal []float64) error

	// GetCoefficients returns a copy of the window coefficients
	GetCoefficients() []float64

	// GetSize returns the window size
	GetSize() int

	// GetType returns the window type
	GetType() WindowType
}

// New creates a window of the given type and size. Kaiser windows use
// DefaultKaiserBeta; use NewKaiser directly for a custom beta.
func New(windowType WindowType, size int) (Window, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", size)
	}

	switch windowType {
	case WindowRectangular:
		return NewRectangular(size), nil
	case WindowHann:
		return NewHann(size), nil
	case WindowHamming:
		return NewHamming(size), nil
	case WindowBlackman:
		return NewBlackman(size), nil
	case WindowKaiser:
		return NewKaiser(size, DefaultKaiserBeta), nil
	default:
		return nil, fmt.Errorf("unknown window type: %s", windowType)
	}
}

// applyWindow multiplies signal by coefficients into a new slice
func applyWindow(signal, coefficients []float64) []float64 {
	if len(signal) != len(coefficients) {
		return nil
	}

	windowed := make([]float64, len(signal))
	for i := range signal {
		windowed[i] = signal[i] * coefficients[i]
	}

	return windowed
}

// applyWindowInPlace multiplies signal by coefficients in-place
func applyWindowInPlace(signal, coefficients []float64) error {
	if len(signal) != len(coefficients) {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), len(coefficients))
	}

	for i := range signal {
		signal[i] *= coefficients[i]
	}

	return nil
}

// copyCoefficients returns a defensive copy of the coefficients
func copyCoefficients(coefficients []float64) []float64 {
	coeffs := make([]float64, len(coefficients))
	copy(coeffs, coefficients)
	return coeffs
}
