package spectral

import (
	"fmt"
	"math"
	"math/cmplx"
	"runtime"
	"sync"

	"github.com/myfanview/myfanview.github.io/algorithms/preprocess"
	"github.com/myfanview/myfanview.github.io/algorithms/windowing"
	"github.com/myfanview/myfanview.github.io/logging"
)

// Automatic sizing bounds. SuggestParameters never returns a window
// smaller than minWindowSize, and steers the frame count into
// [minFrames, maxFrames] so spectrograms stay readable.
const (
	minWindowSize = 64
	minFrames     = 4
	maxFrames     = 512
)

// STFT provides Short-Time Fourier Transform functionality
type STFT struct {
	fft    *FFT
	logger logging.Logger
}

// STFTResult holds a spectrogram in dB. Spectrogram is frame-major:
// Spectrogram[i][j] is the level at time Times[i] and frequency
// Frequencies[j].
type STFTResult struct {
	Spectrogram [][]float64 `json:"spectrogram"` // Time x Frequency, dB
	Times       []float64   `json:"times"`       // Frame start times (seconds)
	Frequencies []float64   `json:"frequencies"` // Bin frequencies (Hz)
	WindowSize  int         `json:"window_size"`
	HopSize     int         `json:"hop_size"`
	FFTLength   int         `json:"fft_length"`
	NumFrames   int         `json:"num_frames"`
	FreqBins    int         `json:"freq_bins"`
}

// NewSTFT creates a new STFT engine
func NewSTFT() *STFT {
	return &STFT{
		fft: NewFFT(),
		logger: logging.WithFields(logging.Fields{
			"component": "stft",
		}),
	}
}

// Compute slides a window of windowSize samples across the signal with
// stride hopSize (no partial trailing frame), windows each frame,
// zero-pads it to a power-of-two FFT length and stores the normalized
// amplitude spectrum in dB. An empty windowType selects Hann.
//
// Normalization: the DC bin is divided by the FFT length N, every other
// positive-frequency bin by N/2, so a full-scale sinusoid shows its true
// amplitude regardless of N.
func (s *STFT) Compute(signal []float64, windowSize, hopSize int, sampleRate float64, windowType windowing.WindowType) (*STFTResult, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("empty signal")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}
	if windowSize <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", windowSize)
	}
	if hopSize <= 0 {
		return nil, fmt.Errorf("hop size must be positive, got %d", hopSize)
	}
	if windowSize > len(signal) {
		return nil, fmt.Errorf("window size (%d) exceeds signal length (%d)", windowSize, len(signal))
	}

	if windowType == "" {
		windowType = windowing.WindowHann
	}

	window, err := windowing.New(windowType, windowSize)
	if err != nil {
		return nil, err
	}

	fftLength := preprocess.NextPowerOfTwo(windowSize)
	freqBins := fftLength / 2
	numFrames := (len(signal)-windowSize)/hopSize + 1

	spectrogram := make([][]float64, numFrames)
	for i := range spectrogram {
		spectrogram[i] = make([]float64, freqBins)
	}

	// Every frame depends only on its own slice of the signal, so frames
	// are fanned out to a bounded worker pool.
	numWorkers := optimalWorkerCount(numFrames)
	jobs := make(chan int, numFrames)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			frameBuffer := make([]float64, windowSize)

			for frameIdx := range jobs {
				start := frameIdx * hopSize
				copy(frameBuffer, signal[start:start+windowSize])

				if err := window.ApplyInPlace(frameBuffer); err != nil {
					continue
				}

				padded := preprocess.ZeroPad(frameBuffer, fftLength)
				spectrum := s.fft.ForwardComplex(padded)

				for bin := 0; bin < freqBins; bin++ {
					scale := 2.0 / float64(fftLength)
					if bin == 0 {
						scale = 1.0 / float64(fftLength)
					}
					spectrogram[frameIdx][bin] = ToDecibels(cmplx.Abs(spectrum[bin]) * scale)
				}
			}
		}()
	}

	for frameIdx := 0; frameIdx < numFrames; frameIdx++ {
		jobs <- frameIdx
	}
	close(jobs)
	wg.Wait()

	times := make([]float64, numFrames)
	for i := range times {
		times[i] = float64(i*hopSize) / sampleRate
	}

	return &STFTResult{
		Spectrogram: spectrogram,
		Times:       times,
		Frequencies: FrequencyAxis(fftLength, sampleRate),
		WindowSize:  windowSize,
		HopSize:     hopSize,
		FFTLength:   fftLength,
		NumFrames:   numFrames,
		FreqBins:    freqBins,
	}, nil
}

// SuggestParameters picks a window and hop size from an expected
// fundamental frequency: the window spans at least four cycles, rounded
// up to a power of two, then shrunk or grown until the frame count lands
// in a usable band. Pass expectedFrequency <= 0 when unknown to get the
// minimum window. Callers that know their window should pass explicit
// sizes to Compute instead.
func (s *STFT) SuggestParameters(signalLength int, sampleRate, expectedFrequency float64) (windowSize, hopSize int, err error) {
	if signalLength <= 0 {
		return 0, 0, fmt.Errorf("signal length must be positive, got %d", signalLength)
	}
	if sampleRate <= 0 {
		return 0, 0, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}

	windowSize = minWindowSize
	if expectedFrequency > 0 {
		samplesPerCycle := sampleRate / expectedFrequency
		windowSize = preprocess.NextPowerOfTwo(int(math.Ceil(4 * samplesPerCycle)))
		if windowSize < minWindowSize {
			windowSize = minWindowSize
		}
	}

	// The window must leave room for at least one frame.
	for windowSize > signalLength && windowSize > minWindowSize {
		windowSize /= 2
	}
	if windowSize > signalLength {
		return 0, 0, fmt.Errorf("signal too short for analysis: %d samples, need at least %d", signalLength, minWindowSize)
	}

	frames := func(win int) int {
		return (signalLength-win)/(win/2) + 1
	}

	// Steer the frame count into the sanity band.
	for windowSize > minWindowSize && frames(windowSize) < minFrames {
		windowSize /= 2
	}
	for frames(windowSize) > maxFrames && windowSize*2 <= signalLength {
		windowSize *= 2
	}

	return windowSize, windowSize / 2, nil
}

// optimalWorkerCount sizes the frame worker pool to the workload
func optimalWorkerCount(numFrames int) int {
	numCPU := runtime.NumCPU()

	if numFrames < 100 {
		return max(min(numCPU/2, numFrames), 1)
	}

	if numFrames < 1000 {
		return min(numCPU, 8)
	}

	return numCPU
}
