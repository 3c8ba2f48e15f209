package microcode

import "fmt"

const (
	// DeltaMask selects the pointer increment bits of an opcode.
	DeltaMask = 0x3FFF
	// ClassShift is the bit position of the class field.
	ClassShift = 14

	// StepInput is the step whose RAM word receives the input sample.
	StepInput = 0x00
	// StepOutRight is the step that latches the right output.
	StepOutRight = 0x60
	// StepOutLeft is the step that latches the left output.
	StepOutLeft = 0x70
)

// Class is the two-bit operation selector of an opcode.
type Class uint8

const (
	// ClassAccumulate reads RAM and adds half of it to the accumulator.
	ClassAccumulate Class = 0b00
	// ClassLoad reads RAM and replaces the accumulator with half of it.
	ClassLoad Class = 0b01
	// ClassStore writes the accumulator to RAM and adds half of it to itself.
	ClassStore Class = 0b10
	// ClassStoreInverted writes the negated accumulator to RAM and keeps
	// minus half of it.
	ClassStoreInverted Class = 0b11
)

func (c Class) String() string {
	switch c {
	case ClassAccumulate:
		return "accumulate"
	case ClassLoad:
		return "load"
	case ClassStore:
		return "store"
	case ClassStoreInverted:
		return "store_inverted"
	default:
		return "unknown"
	}
}

// Mnemonic returns the short assembler mnemonic of the class.
func (c Class) Mnemonic() string {
	switch c {
	case ClassAccumulate:
		return "acc"
	case ClassLoad:
		return "ld"
	case ClassStore:
		return "st"
	case ClassStoreInverted:
		return "stn"
	default:
		return "???"
	}
}

// Writes reports whether the class stores to RAM.
func (c Class) Writes() bool {
	return c&0b10 != 0
}

// Opcode is one 16-bit microcode word.
type Opcode uint16

// Encode packs a class and a pointer increment into an opcode. Bits of
// delta above the 14-bit field are discarded.
func Encode(c Class, delta uint16) Opcode {
	return Opcode(uint16(c&0b11)<<ClassShift | delta&DeltaMask)
}

// Class returns the operation selector.
func (op Opcode) Class() Class {
	return Class(op >> ClassShift)
}

// Delta returns the unsigned pointer increment.
func (op Opcode) Delta() uint16 {
	return uint16(op) & DeltaMask
}

func (op Opcode) String() string {
	return fmt.Sprintf("%-3s +0x%04x", op.Class().Mnemonic(), op.Delta())
}
