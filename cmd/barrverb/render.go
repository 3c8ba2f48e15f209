package main

import (
	"io"

	"github.com/cwbudde/algo-barrverb/dsp/barrverb"
	"github.com/cwbudde/algo-barrverb/dsp/core"
	"github.com/cwbudde/algo-barrverb/dsp/signal"
	"github.com/cwbudde/algo-barrverb/internal/audiofile"
	"github.com/cwbudde/algo-barrverb/internal/logger"
)

func runRender(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("render", stderr)
	program := fs.Int("program", 0, "program number 0..63")
	romPath := fs.String("rom", "", "ROM image file (default: built-in)")
	tail := fs.Float64("tail", 2, "seconds of silence appended to let the reverb ring out")
	block := fs.Int("block", core.DefaultBlockSize, "frames per engine call (even)")
	verbose := fs.Bool("v", false, "echo log to stderr")
	gen := fs.String("gen", "", "synthesize the input instead of reading a file: impulse, sine or noise")
	seconds := fs.Float64("seconds", 2, "length of the synthesized input")
	rate := fs.Float64("rate", barrverb.DefaultSampleRate, "sample rate of the synthesized input")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *verbose {
		logger.SetEcho(stderr)
		defer logger.SetEcho(nil)
	}

	if err := checkProgram(*program); err != nil {
		return usageError(stderr, fs, "%v", err)
	}
	if *block < 2 || *block%2 != 0 {
		return usageError(stderr, fs, "block must be an even number >= 2: %d", *block)
	}
	if *tail < 0 {
		return usageError(stderr, fs, "tail must be >= 0: %g", *tail)
	}
	if *rate < 1 {
		return usageError(stderr, fs, "rate must be >= 1: %g", *rate)
	}

	var (
		in      *audiofile.Audio
		outPath string
		err     error
	)

	switch {
	case *gen != "" && fs.NArg() == 1:
		outPath = fs.Arg(0)
		in, err = synthesize(*gen, *seconds, *rate)
		if err != nil {
			return usageError(stderr, fs, "%v", err)
		}
	case *gen == "" && fs.NArg() == 2:
		outPath = fs.Arg(1)
		in, err = audiofile.Load(fs.Arg(0))
		if err != nil {
			return fail(stderr, err)
		}
		logger.Logf(logTag, "read %s: %d frames at %d Hz", fs.Arg(0), in.Frames(), in.SampleRate)
	default:
		return usageError(stderr, fs, "render takes <in> <out.wav>, or -gen with <out.wav>")
	}

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(in.SampleRate)),
		core.WithBlockSize(*block),
	)

	e, err := newEngine(*romPath, *program, cfg.SampleRate)
	if err != nil {
		return fail(stderr, err)
	}

	out := render(e, in, cfg, int(*tail*cfg.SampleRate))

	if err := audiofile.Save(outPath, out); err != nil {
		return fail(stderr, err)
	}

	logger.Logf(logTag, "wrote %s: %d frames", outPath, out.Frames())
	return exitOK
}

// render runs in plus tailFrames of silence through e in blocks.
func render(e *barrverb.Engine, in *audiofile.Audio, cfg core.ProcessorConfig, tailFrames int) *audiofile.Audio {
	frames := in.Frames() + max(tailFrames, 0)

	src := core.Pad(in.Samples, 2*frames)

	dst := make([]int16, len(src))
	step := cfg.BlockSamples()
	for off := 0; off < len(src); off += step {
		end := min(off+step, len(src))
		e.Run(src[off:end], dst[off:end], (end-off)/2)
	}

	return &audiofile.Audio{SampleRate: in.SampleRate, Samples: dst}
}

func synthesize(kind string, seconds, rate float64) (*audiofile.Audio, error) {
	g := signal.NewGenerator([]core.ProcessorOption{core.WithSampleRate(rate)})
	frames := max(g.Seconds(seconds), 1)

	var (
		samples []int16
		err     error
	)

	switch kind {
	case "impulse":
		samples, err = g.Impulse(signal.ImpulseAmplitude, frames)
	case "sine":
		samples, err = g.Sine(440, 0.5, frames)
	case "noise":
		samples, err = g.WhiteNoise(0.5, frames)
	default:
		return nil, errUnknownGen(kind)
	}
	if err != nil {
		return nil, err
	}

	logger.Logf(logTag, "synthesized %s: %d frames at %.0f Hz", kind, frames, rate)
	return &audiofile.Audio{SampleRate: int(rate), Samples: samples}, nil
}
