package barrverb

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-barrverb/dsp/barrverb/microcode"
	"github.com/cwbudde/algo-barrverb/dsp/barrverb/rom"
)

const (
	// ScratchWords is the size of the scratch RAM in 16-bit words.
	ScratchWords = 16384
	// PointerMask wraps the scratch pointer to 14 bits.
	PointerMask = ScratchWords - 1
	// Steps is the number of opcodes executed per engine sample.
	Steps = rom.ProgramLen
	// ProgramCount is the number of selectable programs.
	ProgramCount = rom.Programs

	// Positional I/O steps.
	StepInput    = microcode.StepInput
	StepOutRight = microcode.StepOutRight
	StepOutLeft  = microcode.StepOutLeft

	// ClampLimit bounds the ai register after every step.
	ClampLimit = 2047
	// InputScale converts the filtered float input to engine fixed point.
	InputScale = 2048
	// OutputScale converts engine outputs back to 16-bit full scale.
	OutputScale = 16

	// DefaultSampleRate is the host sample rate assumed by New.
	DefaultSampleRate = 44100.0

	pcmScale = 1.0 / 32768
)

// Errors returned by New and SetSampleRate.
var (
	ErrInvalidSampleRate = errors.New("barrverb: sample rate must be > 0 and finite")
	ErrNilROM            = errors.New("barrverb: nil ROM image")
)

// State is a snapshot of the DSP registers.
type State struct {
	Acc   int16
	Latch int16
	AI    int16
	Ptr   uint16
}

// Option configures New.
type Option func(*config) error

type config struct {
	sampleRate float64
	program    uint8
	image      *rom.Image
}

// WithSampleRate sets the host sample rate used for the input filter.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) error {
		if err := validateSampleRate(sampleRate); err != nil {
			return err
		}

		cfg.sampleRate = sampleRate

		return nil
	}
}

// WithProgram selects the initial program (index & 0x3F).
func WithProgram(index uint8) Option {
	return func(cfg *config) error {
		cfg.program = index

		return nil
	}
}

// WithROM replaces the built-in ROM.
func WithROM(img *rom.Image) Option {
	return func(cfg *config) error {
		if img == nil {
			return ErrNilROM
		}

		cfg.image = img

		return nil
	}
}

// Engine is the reverb processor: input filter, scratch RAM, DSP registers
// and program selection.
//
// The zero value is a degraded engine whose Run is a no-op.
type Engine struct {
	sampleRate float64
	filter     InputFilter

	image   *rom.Image
	words   *[rom.Words]uint16
	program uint8
	offset  int

	ram []int16

	acc, li, ai int16
	ptr         uint16
}

// New returns an engine with zeroed scratch RAM, the input filter set for
// 44.1 kHz (unless overridden) and program 0 selected.
func New(opts ...Option) (*Engine, error) {
	cfg := config{sampleRate: DefaultSampleRate}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.image == nil {
		cfg.image = rom.Default()
	}

	e := &Engine{
		image: cfg.image,
		words: cfg.image.Words(),
		ram:   make([]int16, ScratchWords),
	}

	if err := e.SetSampleRate(cfg.sampleRate); err != nil {
		return nil, err
	}

	e.SetProgram(cfg.program)

	return e, nil
}

// SetSampleRate recomputes the input filter coefficients. Filter state is
// cleared, so calling it mid-stream produces a discontinuity.
func (e *Engine) SetSampleRate(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	if err := e.filter.SetSampleRate(sampleRate); err != nil {
		return err
	}

	e.sampleRate = sampleRate

	return nil
}

// SampleRate returns the host sample rate in Hz.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// SetProgram selects program index & 0x3F. Indices above 63 alias.
func (e *Engine) SetProgram(index uint8) {
	e.program = index & rom.IndexMask
	e.offset = rom.Offset(e.program)
}

// Program returns the selected program index.
func (e *Engine) Program() uint8 { return e.program }

// ProgramName returns the name of program index & 0x3F.
func (e *Engine) ProgramName(index uint8) string {
	if e.image == nil {
		return rom.Default().Name(index)
	}

	return e.image.Name(index)
}

// ROM returns the program image in use.
func (e *Engine) ROM() *rom.Image { return e.image }

// RAMUsage returns the scratch RAM size in words.
func (e *Engine) RAMUsage() int { return ScratchWords }

// State returns the DSP registers.
func (e *Engine) State() State {
	return State{Acc: e.acc, Latch: e.li, AI: e.ai, Ptr: e.ptr}
}

// Reset clears scratch RAM, DSP registers and filter state. Program and
// sample rate are kept.
func (e *Engine) Reset() {
	clear(e.ram)
	e.acc, e.li, e.ai, e.ptr = 0, 0, 0, 0
	e.filter.Reset()
}

// InputFilter returns the input filter cascade.
func (e *Engine) InputFilter() *InputFilter { return &e.filter }

func validateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	return nil
}
