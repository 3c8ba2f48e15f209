package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-barrverb/dsp/core"
	"github.com/cwbudde/algo-barrverb/dsp/pcm"
)

// Generator creates deterministic stereo buffers from a shared
// configuration. Both channels carry the same signal.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Sine renders frames of a sine at freqHz with peak amplitude in [0, 1].
func (g *Generator) Sine(freqHz, amplitude float64, frames int) ([]int16, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("signal: sine frames must be > 0: %d", frames)
	}
	if freqHz <= 0 || freqHz >= g.cfg.SampleRate/2 {
		return nil, fmt.Errorf("signal: sine frequency must be in (0, %g): %f", g.cfg.SampleRate/2, freqHz)
	}
	if amplitude < 0 || amplitude > 1 {
		return nil, fmt.Errorf("signal: sine amplitude must be in [0, 1]: %f", amplitude)
	}
	mono := make([]float64, frames)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range mono {
		mono[i] = amplitude * math.Sin(step*float64(i))
	}
	return duplicate(mono), nil
}

// WhiteNoise renders frames of uniform noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, frames int) ([]int16, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("signal: noise frames must be > 0: %d", frames)
	}
	if amplitude < 0 || amplitude > 1 {
		return nil, fmt.Errorf("signal: noise amplitude must be in [0, 1]: %f", amplitude)
	}
	mono := make([]float64, frames)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range mono {
		mono[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return duplicate(mono), nil
}

// Impulse renders a single (amplitude, amplitude) frame followed by
// frames-1 silent frames.
func (g *Generator) Impulse(amplitude int16, frames int) ([]int16, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("signal: impulse frames must be > 0: %d", frames)
	}
	out := make([]int16, 2*frames)
	out[0], out[1] = amplitude, amplitude
	return out, nil
}

// Seconds converts a duration to a frame count at the configured rate.
func (g *Generator) Seconds(s float64) int {
	return int(math.Round(s * g.cfg.SampleRate))
}

func duplicate(mono []float64) []int16 {
	samples := make([]int16, len(mono))
	pcm.FromFloat(samples, mono)
	out := make([]int16, 2*len(mono))
	pcm.Duplicate(out, samples)
	return out
}
