package barrverb

import (
	"github.com/cwbudde/algo-barrverb/dsp/barrverb/microcode"
	"github.com/cwbudde/algo-barrverb/dsp/core"
)

// Run processes frames stereo frames from input into output. Both slices
// are interleaved L,R; frames is clamped to what both can hold. The mono
// sum of every frame is filtered at the host rate, but only the first
// frame of each pair drives the program. Its result is written to both
// frames of the pair. Run does not allocate.
func (e *Engine) Run(input, output []int16, frames int) {
	if e.ram == nil || e.words == nil || frames <= 0 {
		return
	}

	frames = min(frames, len(input)/2, len(output)/2)

	ram := e.ram[:ScratchWords]
	code := e.words[e.offset : e.offset+Steps]
	acc, li, ai, ptr := e.acc, e.li, e.ai, e.ptr

	for i := 0; i < frames; i += 2 {
		in := toFixed(e.filter.ProcessSample(monoIn(input, i)))
		if i+1 < frames {
			e.filter.ProcessSample(monoIn(input, i+1))
		}

		var outL, outR int16

		for step, w := range code {
			op := microcode.Opcode(w)

			switch op.Class() {
			case microcode.ClassAccumulate:
				ai = ram[ptr]
				li = acc + ai>>1
			case microcode.ClassLoad:
				ai = ram[ptr]
				li = ai >> 1
			case microcode.ClassStore:
				ai = acc
				ram[ptr] = ai
				li = acc + ai>>1
			case microcode.ClassStoreInverted:
				ai = acc
				ram[ptr] = -ai
				li = -(ai >> 1)
			}

			ai = clampAI(ai)

			switch step {
			case StepInput:
				ram[ptr] = in
			case StepOutRight:
				outR = ai
			case StepOutLeft:
				outL = ai
			default:
				acc = li
			}

			ptr = (ptr + op.Delta()) & PointerMask
		}

		l, r := outL*OutputScale, outR*OutputScale
		output[2*i], output[2*i+1] = l, r

		if i+1 < frames {
			output[2*i+2], output[2*i+3] = l, r
		}
	}

	e.acc, e.li, e.ai, e.ptr = acc, li, ai, ptr
}

// Process runs every frame of src into dst. dst may alias src.
func (e *Engine) Process(dst, src []int16) {
	e.Run(src, dst, len(src)/2)
}

func monoIn(input []int16, frame int) float64 {
	return (float64(input[2*frame]) + float64(input[2*frame+1])) * pcmScale / 2
}

// toFixed truncates lp*2048 toward zero, saturating at the int16 range.
func toFixed(lp float64) int16 {
	return core.SaturateInt16(lp * InputScale)
}

func clampAI(ai int16) int16 {
	return max(-ClampLimit, min(ClampLimit, ai))
}
