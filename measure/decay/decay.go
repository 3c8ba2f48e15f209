package decay

import (
	"errors"

	"github.com/cwbudde/algo-barrverb/dsp/core"
	"github.com/cwbudde/algo-barrverb/dsp/pcm"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultThreshold is the sample magnitude below which output counts as
// settled.
const DefaultThreshold = 4

// Errors returned by Analyze and SchroederIntegral.
var (
	ErrEmpty             = errors.New("decay: impulse response is empty")
	ErrInvalidSampleRate = errors.New("decay: sample rate must be positive")
	ErrSilent            = errors.New("decay: impulse response is silent")
)

// Runner is the block interface of the engine.
type Runner interface {
	Run(input, output []int16, frames int)
}

// Metrics holds the decay measurements of one impulse response.
type Metrics struct {
	RT60       float64 // seconds, from T30 or T20
	EDT        float64 // seconds, 0 to -10 dB extrapolated
	Tail       float64 // seconds until the last sample at or above Threshold
	TailFrames int     // frames until the last sample at or above Threshold
	PeakIndex  int     // frame of the largest sample
	Peak       int     // largest sample magnitude
}

// Analyzer computes Metrics from stereo impulse responses.
type Analyzer struct {
	SampleRate float64
	Threshold  int
}

// NewAnalyzer returns an analyzer with the default threshold.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate, Threshold: DefaultThreshold}
}

// ImpulseResponse feeds one frame of (amplitude, amplitude) followed by
// frames-1 silent frames through r and returns the output.
func ImpulseResponse(r Runner, frames int, amplitude int16) []int16 {
	if frames <= 0 {
		return nil
	}

	in := make([]int16, 2*frames)
	in[0], in[1] = amplitude, amplitude

	out := make([]int16, len(in))
	r.Run(in, out, frames)

	return out
}

// Analyze measures an interleaved stereo impulse response.
func (a *Analyzer) Analyze(stereo []int16) (Metrics, error) {
	frames := pcm.Frames(stereo)
	if frames == 0 {
		return Metrics{}, ErrEmpty
	}

	if a.SampleRate <= 0 {
		return Metrics{}, ErrInvalidSampleRate
	}

	m := Metrics{PeakIndex: -1}

	for i, v := range stereo[:2*frames] {
		if av := abs(v); av > m.Peak {
			m.Peak, m.PeakIndex = av, i/2
		}
	}

	if m.Peak == 0 {
		return m, ErrSilent
	}

	threshold := max(a.Threshold, 1)
	for i := 2*frames - 1; i >= 0; i-- {
		if abs(stereo[i]) >= threshold {
			m.TailFrames = i/2 + 1
			break
		}
	}

	m.Tail = float64(m.TailFrames) / a.SampleRate

	schroeder := a.schroederIntegral(Energy(stereo[2*m.PeakIndex : 2*frames]))

	m.EDT = a.reverbTime(schroeder, 0, -10)

	m.RT60 = a.reverbTime(schroeder, -5, -35)
	if m.RT60 == 0 {
		m.RT60 = a.reverbTime(schroeder, -5, -25)
	}

	return m, nil
}

// Energy returns L²+R² of each frame, normalized to full scale.
func Energy(stereo []int16) []float64 {
	n := pcm.Frames(stereo)
	left := make([]float64, n)
	right := make([]float64, n)
	pcm.Split(left, right, stereo)

	out := make([]float64, n)
	vecmath.Power(out, left, right)

	return out
}

// SchroederIntegral returns the backward-integrated energy curve in dB,
// normalized so the first value is 0 dB.
func (a *Analyzer) SchroederIntegral(energy []float64) ([]float64, error) {
	if len(energy) == 0 {
		return nil, ErrEmpty
	}

	return a.schroederIntegral(energy), nil
}

func (a *Analyzer) schroederIntegral(energy []float64) []float64 {
	result := make([]float64, len(energy))

	var sum float64
	for i := len(energy) - 1; i >= 0; i-- {
		sum += energy[i]
		result[i] = sum
	}

	total := result[0]
	if total <= 0 {
		return result
	}

	for i, v := range result {
		if v <= 0 {
			result[i] = -200
		} else {
			result[i] = core.LinearPowerToDB(v / total)
		}
	}

	return result
}

// reverbTime fits a line to the Schroeder curve between startDB and endDB
// and extrapolates it to -60 dB. It returns 0 when the curve never spans
// the range.
func (a *Analyzer) reverbTime(schroeder []float64, startDB, endDB float64) float64 {
	startIdx, endIdx := -1, -1

	for i, v := range schroeder {
		if startIdx < 0 && v <= startDB {
			startIdx = i
		}

		if startIdx >= 0 && v <= endDB {
			endIdx = i
			break
		}
	}

	if startIdx < 0 || endIdx <= startIdx {
		return 0
	}

	var sumX, sumY, sumXX, sumXY float64

	for i := startIdx; i <= endIdx; i++ {
		x := float64(i - startIdx)
		y := schroeder[i]
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}

	n := float64(endIdx - startIdx + 1)

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}

	// dB per frame
	slope := (n*sumXY - sumX*sumY) / denom
	if slope >= 0 {
		return 0
	}

	return -60 / (slope * a.SampleRate)
}

func abs(v int16) int {
	if v < 0 {
		return -int(v)
	}

	return int(v)
}
