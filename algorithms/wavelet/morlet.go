package wavelet

import (
	"math"
)

// Morlet is the complex Morlet mother wavelet: a complex exponential
// under a Gaussian envelope,
//
//	psi(u) = norm * exp(-u^2 / 2*sigma^2) * (cos(omega0*u) + i*sin(omega0*u))
//
// with norm = 1/sqrt(sigma*sqrt(pi)). Scales are expressed in samples, so
// the argument u is a sample offset divided by the scale.
type Morlet struct {
	Omega0 float64 // Center frequency (radians per unit argument)
	Sigma  float64 // Gaussian envelope width
}

// NewMorlet creates a Morlet wavelet with the given parameters
func NewMorlet(omega0, sigma float64) *Morlet {
	return &Morlet{
		Omega0: omega0,
		Sigma:  sigma,
	}
}

// Evaluate computes psi(u)
func (m *Morlet) Evaluate(u float64) complex128 {
	norm := 1.0 / math.Sqrt(m.Sigma*math.Sqrt(math.Pi))
	envelope := norm * math.Exp(-u*u/(2*m.Sigma*m.Sigma))
	return complex(envelope*math.Cos(m.Omega0*u), envelope*math.Sin(m.Omega0*u))
}

// SupportHalfWidth returns the effective support of the wavelet at the
// given scale as a half-width in samples. Beyond +-5 sigma the Gaussian
// envelope is negligible.
func (m *Morlet) SupportHalfWidth(scale float64) int {
	return int(scale * 5 * m.Sigma)
}

// CenterFrequency maps a scale (in samples) to the physical frequency the
// wavelet responds to most strongly: f = (omega0 / 2*pi) * sampleRate / scale.
func (m *Morlet) CenterFrequency(scale, sampleRate float64) float64 {
	return m.Omega0 / (2 * math.Pi) * sampleRate / scale
}
