package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-barrverb/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by Magnitude.
var (
	ErrInvalidSize       = errors.New("response: FFT size must be a power of two >= 16")
	ErrInvalidSampleRate = errors.New("response: sample rate must be > 0 and finite")
)

// Processor is a stateful single-channel filter.
type Processor interface {
	ProcessSample(x float64) float64
	Reset()
}

// Response is a one-sided magnitude response.
type Response struct {
	BinHz float64   // spacing of Mag in Hz
	Mag   []float64 // linear magnitude for bins 0..N/2
}

// Magnitude resets p, records fftSize samples of its impulse response and
// returns the magnitude of their spectrum. p is reset again on return.
func Magnitude(p Processor, sampleRate float64, fftSize int) (Response, error) {
	if fftSize < 16 || fftSize&(fftSize-1) != 0 {
		return Response{}, fmt.Errorf("%w: %d", ErrInvalidSize, fftSize)
	}

	if !validRate(sampleRate) {
		return Response{}, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Response{}, fmt.Errorf("response: fft plan: %w", err)
	}

	p.Reset()
	defer p.Reset()

	in := make([]complex128, fftSize)
	in[0] = complex(p.ProcessSample(1), 0)

	for i := 1; i < fftSize; i++ {
		in[i] = complex(p.ProcessSample(0), 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Response{}, fmt.Errorf("response: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return Response{BinHz: sampleRate / float64(fftSize), Mag: mag}, nil
}

// At returns the magnitude at freqHz, interpolating linearly between bins.
// Frequencies outside the response are clamped to the first or last bin.
func (r Response) At(freqHz float64) float64 {
	if len(r.Mag) == 0 || r.BinHz <= 0 {
		return 0
	}

	pos := freqHz / r.BinHz
	if pos <= 0 {
		return r.Mag[0]
	}

	last := len(r.Mag) - 1
	if pos >= float64(last) {
		return r.Mag[last]
	}

	i := int(pos)
	frac := pos - float64(i)

	return r.Mag[i]*(1-frac) + r.Mag[i+1]*frac
}

// DB returns At(freqHz) in decibels.
func (r Response) DB(freqHz float64) float64 {
	return core.LinearToDB(r.At(freqHz))
}

func validRate(sampleRate float64) bool {
	return sampleRate > 0 && !math.IsNaN(sampleRate) && !math.IsInf(sampleRate, 0)
}
