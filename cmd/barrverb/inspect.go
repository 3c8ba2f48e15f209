package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-barrverb/dsp/barrverb"
	"github.com/cwbudde/algo-barrverb/dsp/barrverb/microcode"
	"github.com/cwbudde/algo-barrverb/dsp/barrverb/rom"
	"github.com/cwbudde/algo-barrverb/dsp/core"
	"github.com/cwbudde/algo-barrverb/measure/response"
)

func runList(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("list", stderr)
	romPath := fs.String("rom", "", "ROM image file (default: built-in)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	img, err := loadROM(*romPath)
	if err != nil {
		return fail(stderr, err)
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Index\tName\n")
	fmt.Fprintf(tw, "-----\t----\n")
	for i := range rom.Programs {
		fmt.Fprintf(tw, "%d\t%s\n", i, img.Name(uint8(i)))
	}
	if err := tw.Flush(); err != nil {
		return fail(stderr, err)
	}
	return exitOK
}

func runDis(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("dis", stderr)
	romPath := fs.String("rom", "", "ROM image file (default: built-in)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() != 1 {
		return usageError(stderr, fs, "dis takes exactly one program number")
	}

	n, err := parseProgram(fs.Arg(0))
	if err != nil {
		return usageError(stderr, fs, "%v", err)
	}

	img, err := loadROM(*romPath)
	if err != nil {
		return fail(stderr, err)
	}

	fmt.Fprintf(stdout, "; program %d: %s\n", n, img.Name(uint8(n)))
	if err := microcode.Disassemble(stdout, img.Program(uint8(n))); err != nil {
		return fail(stderr, err)
	}
	return exitOK
}

func runROM(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("rom", stderr)
	out := fs.String("out", "", "output file for the built-in ROM image")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *out == "" {
		return usageError(stderr, fs, "-out is required")
	}

	f, err := os.Create(*out)
	if err != nil {
		return fail(stderr, err)
	}

	err = rom.Default().Encode(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fail(stderr, err)
	}

	fmt.Fprintf(stdout, "wrote %s (%d programs)\n", *out, rom.Programs)
	return exitOK
}

// responseFreqs are the rows printed by the response command.
var responseFreqs = []float64{31.25, 62.5, 125, 250, 500, 1000, 2000, 4000, 5916, 8000, 9458, 12000, 16000, 20000}

func runResponse(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("response", stderr)
	fftSize := fs.Int("fft", 8192, "FFT size (power of two)")
	rate := fs.Float64("rate", barrverb.DefaultSampleRate, "sample rate in Hz")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	f, err := barrverb.NewInputFilter(*rate)
	if err != nil {
		return usageError(stderr, fs, "%v", err)
	}

	r, err := response.Magnitude(f, *rate, *fftSize)
	if errors.Is(err, response.ErrInvalidSize) {
		return usageError(stderr, fs, "%v", err)
	}
	if err != nil {
		return fail(stderr, err)
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Freq [Hz]\tFFT [dB]\tTone [dB]\t\n")
	for _, hz := range responseFreqs {
		if hz >= *rate/2 {
			break
		}
		tone := response.ToneGain(f, hz, *rate, int(*rate))
		fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\t\n", hz, r.DB(hz), core.LinearToDB(tone))
	}
	if err := tw.Flush(); err != nil {
		return fail(stderr, err)
	}
	return exitOK
}

