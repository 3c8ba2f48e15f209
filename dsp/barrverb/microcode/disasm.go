package microcode

import (
	"fmt"
	"io"
)

// StepNote returns the fixed side effect of a step position, or "".
func StepNote(step int) string {
	switch step {
	case StepInput:
		return "in -> ram"
	case StepOutRight:
		return "ai -> out R"
	case StepOutLeft:
		return "ai -> out L"
	default:
		return ""
	}
}

// Disassemble writes one line per step of prog. The relative column is
// the pointer offset of the step from the pointer at step 0, which is the
// delay-line address the step touches.
func Disassemble(w io.Writer, prog []Opcode) error {
	var rel uint16

	for step, op := range prog {
		line := fmt.Sprintf("%02x  %04x  %s  @%04x", step, uint16(op), op, rel)
		if note := StepNote(step); note != "" {
			line += "  ; " + note
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("microcode: disassemble step %d: %w", step, err)
		}

		rel = (rel + op.Delta()) & DeltaMask
	}

	return nil
}
