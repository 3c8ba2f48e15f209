// Package microcode describes the 16-bit instruction word executed by the
// reverb engine.
//
// Each opcode packs two fields:
//
//	15 14 | 13 ............................ 0
//	class | unsigned delay-pointer increment
//
// The class selects how the accumulator, the latch and the scratch RAM
// word under the pointer interact. The increment is added to the circular
// 14-bit pointer after the step executes, so a program encodes both its
// arithmetic and the spacing of the delay taps it touches.
//
// Three step positions have fixed side effects regardless of the opcode:
// step 0x00 writes the input sample, step 0x60 latches the right output
// and step 0x70 latches the left output.
package microcode
