package asm

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-barrverb/dsp/barrverb/microcode"
)

const (
	// ScratchWords is the size of the circular scratch RAM.
	ScratchWords = 16384
	// Steps is the number of opcodes in one program.
	Steps = 128
	// Slots is the number of steps available to the instruction stream.
	Slots = Steps - 3
)

// Assembler errors.
var (
	ErrTooManySteps    = errors.New("asm: program exceeds available steps")
	ErrScratchOverflow = errors.New("asm: delay lines exceed scratch RAM")
	ErrNoInput         = errors.New("asm: program has no input line")
	ErrDuplicateInput  = errors.New("asm: input line declared twice")
	ErrNoOutput        = errors.New("asm: program has no output tap")
	ErrFirstNotLoad    = errors.New("asm: first instruction must be a load")
	ErrTapRange        = errors.New("asm: tap outside its delay line")
	ErrBadLength       = errors.New("asm: delay line length must be >= 0")
)

// Line is a delay line occupying Length()+1 consecutive scratch words.
type Line struct {
	head   int
	length int
}

// Length returns the longest delay the line can provide, in samples.
func (l Line) Length() int { return l.length }

// Words returns the number of scratch words the line occupies.
func (l Line) Words() int { return l.length + 1 }

// Head returns the write position of the line.
func (l Line) Head() Tap { return Tap{addr: l.head} }

// End returns the tap delayed by the full line length.
func (l Line) End() Tap { return Tap{addr: l.head + l.length} }

// Tap returns the read position delayed by delay samples.
func (l Line) Tap(delay int) Tap {
	if delay < 0 || delay > l.length {
		return Tap{addr: l.head, err: fmt.Errorf("%w: delay %d, length %d", ErrTapRange, delay, l.length)}
	}

	return Tap{addr: l.head + delay}
}

// Tap is a relative scratch address.
type Tap struct {
	addr int
	err  error
}

// Addr returns the relative scratch address of the tap.
func (t Tap) Addr() int { return t.addr }

type instr struct {
	class microcode.Class
	addr  int
}

// Program is an assembled 128-step program.
type Program struct {
	Name string
	Code [Steps]microcode.Opcode

	// Words is the number of scratch words claimed by delay lines.
	Words int
	// Used is the number of instruction slots used.
	Used int
}

// Builder accumulates delay lines and instructions for one program.
type Builder struct {
	name  string
	next  int
	input *Line
	code  []instr

	right, left *Tap

	err error
}

// New returns an empty builder.
func New(name string) *Builder {
	return &Builder{name: name}
}

// Name returns the program name.
func (b *Builder) Name() string { return b.name }

// Input declares the input line. Its head receives the filtered input
// sample at step 0.
func (b *Builder) Input(maxDelay int) Line {
	if b.input != nil {
		b.fail(ErrDuplicateInput)
		return *b.input
	}

	l := b.Line(maxDelay)
	b.input = &l

	return l
}

// Line allocates a delay line able to delay by up to length samples.
func (b *Builder) Line(length int) Line {
	if length < 0 {
		b.fail(fmt.Errorf("%w: %d", ErrBadLength, length))
		length = 0
	}

	l := Line{head: b.next, length: length}
	b.next += l.Words()

	return l
}

// Load sets acc to half the word at t.
func (b *Builder) Load(t Tap) { b.emit(microcode.ClassLoad, t) }

// Add adds half the word at t to acc.
func (b *Builder) Add(t Tap) { b.emit(microcode.ClassAccumulate, t) }

// Store writes acc to t; acc grows by half.
func (b *Builder) Store(t Tap) { b.emit(microcode.ClassStore, t) }

// StoreInverted writes -acc to t; acc becomes -acc/2.
func (b *Builder) StoreInverted(t Tap) { b.emit(microcode.ClassStoreInverted, t) }

// Allpass runs acc through a lattice allpass with coefficient -1/2 over
// line l and leaves the negated allpass output in acc:
//
//	v[n] = x[n] - v[n-D]/2
//	acc  = -(v[n-D] + v[n]/2)
//
// The line stores -v, so the recursion carries one sign inversion per trip.
func (b *Builder) Allpass(l Line) {
	end := l.End()
	b.Add(end)
	b.StoreInverted(l.Head())
	b.Add(end)
	b.Add(end)
}

// Mix sums half of every tap into a fresh scratch word and returns a tap
// that reads the sum within the same sample. A single tap is returned
// unchanged.
func (b *Builder) Mix(taps ...Tap) Tap {
	switch len(taps) {
	case 0:
		b.fail(fmt.Errorf("%w: empty mix", ErrTapRange))
		return Tap{}
	case 1:
		return taps[0]
	}

	sum := b.Line(0)

	b.Load(taps[0])
	for _, t := range taps[1:] {
		b.Add(t)
	}

	b.Store(sum.Head())

	return sum.Head()
}

// OutputRight selects the word latched into the right output at step 0x60.
func (b *Builder) OutputRight(t Tap) {
	b.check(t)
	b.right = &t
}

// OutputLeft selects the word latched into the left output at step 0x70.
func (b *Builder) OutputLeft(t Tap) {
	b.check(t)
	b.left = &t
}

// Assemble places the instruction stream and computes pointer increments.
func (b *Builder) Assemble() (Program, error) {
	p := Program{Name: b.name, Words: b.next, Used: len(b.code)}

	switch {
	case b.err != nil:
		return p, fmt.Errorf("%s: %w", b.name, b.err)
	case b.input == nil:
		return p, fmt.Errorf("%s: %w", b.name, ErrNoInput)
	case b.right == nil || b.left == nil:
		return p, fmt.Errorf("%s: %w", b.name, ErrNoOutput)
	case len(b.code) > Slots:
		return p, fmt.Errorf("%s: %w: %d > %d", b.name, ErrTooManySteps, len(b.code), Slots)
	case b.next > ScratchWords:
		return p, fmt.Errorf("%s: %w: %d > %d words", b.name, ErrScratchOverflow, b.next, ScratchWords)
	case len(b.code) == 0 || b.code[0].class != microcode.ClassLoad:
		return p, fmt.Errorf("%s: %w", b.name, ErrFirstNotLoad)
	}

	var steps [Steps]instr

	pad := instr{class: microcode.ClassLoad, addr: b.input.head}
	steps[microcode.StepInput] = pad
	steps[microcode.StepOutRight] = instr{class: microcode.ClassLoad, addr: b.right.addr}
	steps[microcode.StepOutLeft] = instr{class: microcode.ClassLoad, addr: b.left.addr}

	k := 0
	for s := 1; s < Steps; s++ {
		if s == microcode.StepOutRight || s == microcode.StepOutLeft {
			continue
		}

		if k < len(b.code) {
			steps[s] = b.code[k]
			k++
		} else {
			steps[s] = pad
		}
	}

	for s := range Steps {
		next := steps[0].addr - 1
		if s+1 < Steps {
			next = steps[s+1].addr
		}

		delta := uint16((next - steps[s].addr) & microcode.DeltaMask)
		p.Code[s] = microcode.Encode(steps[s].class, delta)
	}

	return p, nil
}

func (b *Builder) emit(c microcode.Class, t Tap) {
	b.check(t)
	b.code = append(b.code, instr{class: c, addr: t.addr})
}

func (b *Builder) check(t Tap) {
	if t.err != nil {
		b.fail(t.err)
	}
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
