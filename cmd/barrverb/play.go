package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-barrverb/dsp/barrverb"
	"github.com/cwbudde/algo-barrverb/dsp/core"
	"github.com/cwbudde/algo-barrverb/dsp/signal"
	"github.com/cwbudde/algo-barrverb/internal/logger"
	"github.com/cwbudde/algo-barrverb/internal/playback"
)

func runPlay(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("play", stderr)
	program := fs.Int("program", 0, "program number 0..63")
	romPath := fs.String("rom", "", "ROM image file (default: built-in)")
	source := fs.String("source", "impulse", "test source: silence, impulse, saw or sine")
	rate := fs.Int("rate", int(barrverb.DefaultSampleRate), "device sample rate in Hz")
	block := fs.Int("block", core.DefaultBlockSize, "frames rendered per engine call (even)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() != 0 {
		return usageError(stderr, fs, "unexpected arguments: %v", fs.Args())
	}
	if err := checkProgram(*program); err != nil {
		return usageError(stderr, fs, "%v", err)
	}
	if *block < 2 || *block%2 != 0 {
		return usageError(stderr, fs, "block must be an even number >= 2: %d", *block)
	}
	if *rate <= 0 {
		return usageError(stderr, fs, "rate must be > 0: %d", *rate)
	}

	kind, err := signal.ParseKind(*source)
	if err != nil {
		return usageError(stderr, fs, "%v", err)
	}

	// Raw mode disables output post-processing, so lines need \r.
	console := crlfWriter{stdout}
	logger.SetEcho(console)
	defer logger.SetEcho(nil)

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(*rate)),
		core.WithBlockSize(*block),
	)

	e, err := newEngine(*romPath, *program, cfg.SampleRate)
	if err != nil {
		return fail(stderr, err)
	}

	stream := playback.NewStream(e, signal.NewSource(kind, *rate), cfg)

	keys, err := playback.OpenKeys(os.Stdin)
	if err != nil {
		return fail(stderr, fmt.Errorf("keyboard: %w", err))
	}
	defer keys.Close()

	out, err := playback.Open(*rate, stream)
	if err != nil {
		return fail(stderr, fmt.Errorf("audio device: %w", err))
	}

	fmt.Fprintln(console, "+/- program, s source, q quit")
	logger.Logf(logTag, "source %s", kind)

	out.Start()

	session := playback.NewSession(stream, logger.Central())
	for {
		key, err := keys.ReadKey()
		if err != nil {
			out.Close()
			return fail(stderr, err)
		}
		if session.Handle(key) {
			break
		}
	}

	if err := out.Close(); err != nil {
		return fail(stderr, err)
	}
	return exitOK
}

type crlfWriter struct{ w io.Writer }

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
