package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/algo-barrverb/dsp/barrverb"
	"github.com/cwbudde/algo-barrverb/dsp/barrverb/rom"
	"github.com/cwbudde/algo-barrverb/internal/logger"
)

const logTag = "barrverb"

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// loadROM returns the built-in image, or the image stored at path.
func loadROM(path string) (*rom.Image, error) {
	if path == "" {
		return rom.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := rom.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Logf(logTag, "loaded ROM image %s", path)
	return img, nil
}

func newEngine(romPath string, program int, sampleRate float64) (*barrverb.Engine, error) {
	img, err := loadROM(romPath)
	if err != nil {
		return nil, err
	}

	e, err := barrverb.New(
		barrverb.WithROM(img),
		barrverb.WithProgram(uint8(program)),
		barrverb.WithSampleRate(sampleRate),
	)
	if err != nil {
		return nil, err
	}

	logger.Logf(logTag, "program %d - %s at %.0f Hz", e.Program(), e.ProgramName(e.Program()), sampleRate)
	return e, nil
}

func parseProgram(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= barrverb.ProgramCount {
		return 0, fmt.Errorf("program must be 0..%d: %q", barrverb.ProgramCount-1, s)
	}
	return n, nil
}

func checkProgram(n int) error {
	if n < 0 || n >= barrverb.ProgramCount {
		return fmt.Errorf("program must be 0..%d: %d", barrverb.ProgramCount-1, n)
	}
	return nil
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "error: %v\n", err)
	return exitError
}

func usageError(stderr io.Writer, fs *flag.FlagSet, format string, args ...any) int {
	fmt.Fprintf(stderr, "error: "+format+"\n", args...)
	fs.Usage()
	return exitUsage
}

type errUnknownGen string

func (e errUnknownGen) Error() string {
	return fmt.Sprintf("unknown generator %q (want impulse, sine or noise)", string(e))
}
