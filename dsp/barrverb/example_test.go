package barrverb_test

import (
	"fmt"

	"github.com/cwbudde/algo-barrverb/dsp/barrverb"
)

func ExampleNew() {
	e, err := barrverb.New(barrverb.WithSampleRate(48000), barrverb.WithProgram(19))
	if err != nil {
		panic(err)
	}

	fmt.Println(e.Program(), e.ProgramName(e.Program()))
	fmt.Println(e.RAMUsage())

	// Output:
	// 19 Gold Plate
	// 16384
}

func ExampleEngine_Run() {
	e, err := barrverb.New()
	if err != nil {
		panic(err)
	}

	in := make([]int16, 2*1024)
	out := make([]int16, len(in))
	e.Run(in, out, 1024)

	silent := true
	for _, v := range out {
		silent = silent && v == 0
	}

	fmt.Println("silent:", silent)
	fmt.Printf("ptr: %#x\n", e.State().Ptr)

	// Output:
	// silent: true
	// ptr: 0x3e00
}

func ExampleEngine_SetProgram() {
	e, err := barrverb.New()
	if err != nil {
		panic(err)
	}

	e.SetProgram(64 + 3)
	fmt.Println(e.Program(), e.ProgramName(67))

	// Output:
	// 3 Studio A
}
