package windowing

import (
	"math"
)

// Kaiser represents a Kaiser window function with a tunable
// leakage/resolution trade-off controlled by beta.
type Kaiser struct {
	size         int
	beta         float64
	coefficients []float64
}

// NewKaiser creates a new Kaiser window with the given beta
func NewKaiser(size int, beta float64) *Kaiser {
	k := &Kaiser{
		size: size,
		beta: beta,
	}
	k.generate()
	return k
}

// generate creates Kaiser window coefficients:
// w[n] = I0(beta * sqrt(1 - (2n/(N-1) - 1)^2)) / I0(beta)
func (k *Kaiser) generate() {
	k.coefficients = make([]float64, k.size)

	if k.size == 1 {
		k.coefficients[0] = 1.0
		return
	}

	denominator := float64(k.size - 1)
	i0Beta := besselI0(k.beta)

	for i := 0; i < k.size; i++ {
		arg := 2.0*float64(i)/denominator - 1.0
		k.coefficients[i] = besselI0(k.beta*math.Sqrt(1-arg*arg)) / i0Beta
	}
}

// besselI0 computes the zero-order modified Bessel function of the first
// kind by truncated power series. Terms are accumulated until they fall
// below 1e-15 or 20 terms have been summed, which is plenty for the
// bounded beta values used for window shaping.
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0

	for i := 1; i <= 20; i++ {
		factor := x / (2.0 * float64(i))
		term *= factor * factor
		sum += term

		if term < 1e-15 {
			break
		}
	}

	return sum
}

// Apply applies the window to a signal (creates new array)
func (k *Kaiser) Apply(signal []float64) []float64 {
	return applyWindow(signal, k.coefficients)
}

// ApplyInPlace applies the window to a signal in-place
func (k *Kaiser) ApplyInPlace(signal []float64) error {
	return applyWindowInPlace(signal, k.coefficients)
}

// GetCoefficients returns a copy of the window coefficients
func (k *Kaiser) GetCoefficients() []float64 {
	return copyCoefficients(k.coefficients)
}

// GetSize returns the window size
func (k *Kaiser) GetSize() int {
	return k.size
}

// GetType returns the window type
func (k *Kaiser) GetType() WindowType {
	return WindowKaiser
}

// GetBeta returns the Kaiser beta parameter
func (k *Kaiser) GetBeta() float64 {
	return k.beta
}
