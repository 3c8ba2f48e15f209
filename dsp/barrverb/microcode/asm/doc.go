// Package asm assembles delay-line programs into 128-step microcode.
//
// Programs are written against named delay lines rather than raw pointer
// increments. Every line owns a contiguous region of relative scratch
// addresses; the assembler converts the address sequence of the emitted
// steps into the per-step increments the engine adds to its pointer.
//
// The total increment of every assembled program is -1 modulo the scratch
// size, so the pointer drifts down by one word per sample. A word written
// at relative address a is therefore found d samples later at relative
// address a+d, which is what Line.Tap returns.
//
// Steps 0x00, 0x60 and 0x70 are reserved for the input write and the two
// output reads; the 125 remaining slots receive the instruction stream in
// order.
package asm
