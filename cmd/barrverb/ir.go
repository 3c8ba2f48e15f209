package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-barrverb/dsp/barrverb"
	"github.com/cwbudde/algo-barrverb/dsp/signal"
	"github.com/cwbudde/algo-barrverb/internal/audiofile"
	"github.com/cwbudde/algo-barrverb/measure/decay"
)

func runIR(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("ir", stderr)
	program := fs.Int("program", 0, "program number 0..63")
	all := fs.Bool("all", false, "measure every program")
	romPath := fs.String("rom", "", "ROM image file (default: built-in)")
	seconds := fs.Float64("seconds", 4, "impulse response length")
	rate := fs.Float64("rate", barrverb.DefaultSampleRate, "sample rate in Hz")
	outPath := fs.String("out", "", "write the impulse response of -program to this WAV file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() != 0 {
		return usageError(stderr, fs, "unexpected arguments: %v", fs.Args())
	}
	if err := checkProgram(*program); err != nil {
		return usageError(stderr, fs, "%v", err)
	}
	if *all && *outPath != "" {
		return usageError(stderr, fs, "-out measures a single program and cannot be combined with -all")
	}

	frames := int(*seconds * *rate)
	if frames < 2 {
		return usageError(stderr, fs, "seconds too short: %g", *seconds)
	}

	e, err := newEngine(*romPath, *program, *rate)
	if err != nil {
		return fail(stderr, err)
	}

	programs := []int{*program}
	if *all {
		programs = programs[:0]
		for p := range barrverb.ProgramCount {
			programs = append(programs, p)
		}
	}

	analyzer := decay.NewAnalyzer(*rate)

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Index\tName\tRT60 s\tEDT s\tTail s\tPeak\t")

	var ir []int16
	for _, p := range programs {
		e.SetProgram(uint8(p))
		e.Reset()

		ir = decay.ImpulseResponse(e, frames, signal.ImpulseAmplitude)
		m, err := analyzer.Analyze(ir)
		switch {
		case errors.Is(err, decay.ErrSilent):
			fmt.Fprintf(tw, "%d\t%s\t-\t-\t-\t0\t\n", p, e.ProgramName(uint8(p)))
			continue
		case err != nil:
			tw.Flush()
			return fail(stderr, fmt.Errorf("program %d: %w", p, err))
		}

		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%.2f\t%d\t\n",
			p, e.ProgramName(uint8(p)), m.RT60, m.EDT, m.Tail, m.Peak)
	}

	if err := tw.Flush(); err != nil {
		return fail(stderr, err)
	}

	if *outPath != "" {
		out := &audiofile.Audio{SampleRate: int(*rate), Samples: ir}
		if err := audiofile.Save(*outPath, out); err != nil {
			return fail(stderr, err)
		}
	}

	return exitOK
}
