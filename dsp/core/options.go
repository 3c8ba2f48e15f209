package core

// Host defaults: 44.1 kHz and the 128-frame blocks the converter DMA
// delivers.
const (
	DefaultSampleRate = 44100.0
	DefaultBlockSize  = 128
)

// ProcessorConfig holds the sample rate and block size a host drives an
// engine with.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the host defaults.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
		BlockSize:  DefaultBlockSize,
	}
}

// WithSampleRate sets the sample rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the block size in frames. Values below 2 are ignored
// since the engine consumes frames in pairs.
func WithBlockSize(frames int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if frames >= 2 {
			cfg.BlockSize = frames
		}
	}
}

// ApplyProcessorOptions applies opts to the defaults. Nil options are skipped.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// BlockSamples returns the interleaved stereo sample count of one block.
func (c ProcessorConfig) BlockSamples() int {
	return 2 * c.BlockSize
}
