package preprocess

// EdgeMode selects how a signal is extended at its boundaries before
// convolution-style processing. Without padding the bins near the edges
// are attenuated because the wavelet support runs off the signal.
type EdgeMode int

const (
	// EdgeNone performs no padding; boundary coefficients are biased.
	EdgeNone EdgeMode = iota

	// EdgeZero extends both ends with zeros.
	EdgeZero

	// EdgeSymmetric mirrors the signal including the boundary sample:
	// [a b c] -> [b a | a b c | c b]
	EdgeSymmetric

	// EdgeReflect mirrors the signal excluding the boundary sample:
	// [a b c] -> [c b | a b c | b a]
	EdgeReflect
)

func (m EdgeMode) String() string {
	switch m {
	case EdgeNone:
		return "none"
	case EdgeZero:
		return "zero"
	case EdgeSymmetric:
		return "symmetric"
	case EdgeReflect:
		return "reflect"
	default:
		return "unknown"
	}
}

// NextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// ZeroPad returns the signal extended with trailing zeros to the given
// length. If length <= len(signal) the signal is returned as a copy of
// its first length samples.
func ZeroPad(signal []float64, length int) []float64 {
	if length < len(signal) {
		length = len(signal)
	}

	out := make([]float64, length)
	copy(out, signal)
	return out
}

// PadEdges extends the signal by n samples on each side according to the
// edge mode and returns the padded signal along with the per-side pad
// actually applied. EdgeNone returns an unchanged copy and a zero pad.
// For the mirror modes the pad is clamped to what a single reflection of
// the signal can provide.
func PadEdges(signal []float64, n int, mode EdgeMode) ([]float64, int) {
	if mode == EdgeNone || n <= 0 || len(signal) == 0 {
		out := make([]float64, len(signal))
		copy(out, signal)
		return out, 0
	}

	length := len(signal)

	switch mode {
	case EdgeZero:
		out := make([]float64, length+2*n)
		copy(out[n:], signal)
		return out, n

	case EdgeSymmetric:
		if n > length {
			n = length
		}
		out := make([]float64, length+2*n)
		for i := 0; i < n; i++ {
			out[i] = signal[n-1-i]
			out[n+length+i] = signal[length-1-i]
		}
		copy(out[n:], signal)
		return out, n

	case EdgeReflect:
		if n > length-1 {
			n = length - 1
		}
		out := make([]float64, length+2*n)
		for i := 0; i < n; i++ {
			out[i] = signal[n-i]
			out[n+length+i] = signal[length-2-i]
		}
		copy(out[n:], signal)
		return out, n

	default:
		out := make([]float64, length)
		copy(out, signal)
		return out, 0
	}
}
