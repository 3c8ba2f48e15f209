// Command barrverb renders, inspects and plays the programs of the
// fixed-point reverb engine.
//
// Usage:
//
//	barrverb <command> [flags] [args]
//
// Commands:
//
//	list                      print the program table
//	dis <program>             disassemble a program
//	render <in> <out.wav>     process a WAV or MP3 file
//	ir                        measure impulse response decay
//	response                  print the input filter magnitude response
//	rom -out <file>           write the ROM image
//	play                      play a test source through the engine
//
// Examples:
//
//	barrverb list
//	barrverb dis 19
//	barrverb render -program 11 -tail 3 drums.wav drums-hall.wav
//	barrverb render -gen impulse -seconds 4 ir.wav
//	barrverb ir -all
//	barrverb play -program 3 -source saw
package main

import (
	"fmt"
	"io"
	"os"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type command struct {
	name  string
	usage string
	run   func(args []string, stdout, stderr io.Writer) int
}

var commands []command

func init() {
	commands = []command{
		{"list", "list [-rom file]", runList},
		{"dis", "dis [-rom file] <program>", runDis},
		{"render", "render [-program n] [-rom file] [-tail s] [-block n] [-v] (<in> | -gen kind [-seconds s] [-rate hz]) <out.wav>", runRender},
		{"ir", "ir [-program n | -all] [-rom file] [-seconds s] [-rate hz] [-out ir.wav]", runIR},
		{"response", "response [-fft n] [-rate hz]", runResponse},
		{"rom", "rom -out file", runROM},
		{"play", "play [-program n] [-rom file] [-source kind] [-rate hz] [-block n]", runPlay},
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	switch args[0] {
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	}

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(args[1:], stdout, stderr)
		}
	}

	fmt.Fprintf(stderr, "error: unknown command %q\n\n", args[0])
	usage(stderr)
	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: barrverb <command> [flags] [args]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  barrverb %s\n", c.usage)
	}
	fmt.Fprintf(w, "\nRun 'barrverb <command> -h' for command flags.\n")
}
