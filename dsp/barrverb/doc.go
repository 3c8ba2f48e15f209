// Package barrverb implements a fixed-point emulation of an early-1980s
// microcoded digital reverb.
//
// Signal path:
//
//	stereo int16 -> mono sum -> two-stage SVF low-pass (host rate)
//	  -> x2048 fixed point -> 128-step microcode program (half rate)
//	  -> x16 -> stereo int16, each result held for two frames
//
// The microcode runs against a 16384-word circular scratch RAM through a
// 14-bit pointer. Each step reads or writes the word under the pointer,
// updates an accumulator and a latch, and advances the pointer by the
// increment encoded in the opcode. Steps 0x00, 0x60 and 0x70 additionally
// write the input sample and latch the right and left outputs.
//
// An Engine is not safe for concurrent use. Run performs no allocation.
package barrverb
