package barrverb

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-barrverb/dsp/barrverb/microcode"
	"github.com/cwbudde/algo-barrverb/dsp/barrverb/rom"
	"github.com/cwbudde/algo-barrverb/internal/testutil"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	e, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return e
}

func render(e *Engine, input []int16) []int16 {
	out := make([]int16, len(input))
	e.Run(input, out, len(input)/2)

	return out
}

// customROM places prog in every slot.
func customROM(t *testing.T, prog [Steps]microcode.Opcode) *rom.Image {
	t.Helper()

	var (
		words [rom.Words]uint16
		names [rom.Programs]string
	)

	for p := range rom.Programs {
		for s, op := range prog {
			words[p*rom.ProgramLen+s] = uint16(op)
		}

		names[p] = "Test"
	}

	img, err := rom.NewImage(&words, &names)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}

	return img
}

func TestNewDefaults(t *testing.T) {
	e := newEngine(t)

	if e.SampleRate() != DefaultSampleRate {
		t.Fatalf("SampleRate() = %v, want %v", e.SampleRate(), DefaultSampleRate)
	}

	if e.Program() != 0 {
		t.Fatalf("Program() = %d, want 0", e.Program())
	}

	if e.RAMUsage() != ScratchWords {
		t.Fatalf("RAMUsage() = %d, want %d", e.RAMUsage(), ScratchWords)
	}

	if e.State() != (State{}) {
		t.Fatalf("State() = %+v, want zero", e.State())
	}

	if e.ROM() != rom.Default() {
		t.Fatal("ROM() is not the default image")
	}
}

func TestNewOptions(t *testing.T) {
	img := customROM(t, [Steps]microcode.Opcode{})

	e := newEngine(t, WithSampleRate(48000), WithProgram(70), WithROM(img), nil)
	if e.SampleRate() != 48000 {
		t.Fatalf("SampleRate() = %v, want 48000", e.SampleRate())
	}

	if e.Program() != 6 {
		t.Fatalf("Program() = %d, want 6", e.Program())
	}

	if e.ROM() != img {
		t.Fatal("ROM() did not return the supplied image")
	}

	if got := e.InputFilter().Stage(0).SampleRate(); got != 48000 {
		t.Fatalf("filter sample rate = %v, want 48000", got)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"zero rate", WithSampleRate(0), ErrInvalidSampleRate},
		{"negative rate", WithSampleRate(-44100), ErrInvalidSampleRate},
		{"nan rate", WithSampleRate(math.NaN()), ErrInvalidSampleRate},
		{"inf rate", WithSampleRate(math.Inf(1)), ErrInvalidSampleRate},
		{"nil rom", WithROM(nil), ErrNilROM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSetSampleRateKeepsRateOnError(t *testing.T) {
	e := newEngine(t)

	if err := e.SetSampleRate(-1); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("SetSampleRate(-1) error = %v", err)
	}

	if e.SampleRate() != DefaultSampleRate {
		t.Fatalf("SampleRate() = %v after failed set", e.SampleRate())
	}

	if err := e.SetSampleRate(8000); err != nil {
		t.Fatalf("SetSampleRate(8000) error = %v", err)
	}

	if e.SampleRate() != 8000 {
		t.Fatalf("SampleRate() = %v, want 8000", e.SampleRate())
	}
}

func TestProgramSelectionAliases(t *testing.T) {
	e := newEngine(t)

	for k := range 256 {
		e.SetProgram(uint8(k))
		if got, want := e.Program(), uint8(k&0x3F); got != want {
			t.Fatalf("SetProgram(%d): Program() = %d, want %d", k, got, want)
		}

		if got, want := e.ProgramName(uint8(k)), e.ProgramName(uint8(k&0x3F)); got != want {
			t.Fatalf("ProgramName(%d) = %q, want %q", k, got, want)
		}
	}

	if got := e.ProgramName(0); got != "Closet" {
		t.Fatalf("ProgramName(0) = %q, want Closet", got)
	}
}

func TestSetProgramIdempotent(t *testing.T) {
	e := newEngine(t)
	e.Run(testutil.StereoNoise(3, 64), make([]int16, 128), 64)

	e.SetProgram(5)
	before := e.State()
	e.SetProgram(5)
	e.SetProgram(5)

	if e.State() != before {
		t.Fatalf("State() = %+v, want %+v", e.State(), before)
	}
}

func TestZeroInZeroOut(t *testing.T) {
	e := newEngine(t)
	e.SetProgram(0)

	out := render(e, make([]int16, 2*65536))
	testutil.RequireAllZero(t, out)
}

func TestImpulseResponseTerminates(t *testing.T) {
	e := newEngine(t)
	e.SetProgram(0)

	out := render(e, testutil.StereoImpulse(1+131072, 32000))

	peak, _ := testutil.PeakInt16(out)
	if peak == 0 {
		t.Fatal("impulse response is silent")
	}

	last := testutil.LastAbove(out, 4)
	if last >= len(out)-2*44100 {
		t.Fatalf("tail still at or above 4 at sample %d of %d", last, len(out))
	}
}

func TestAllProgramsSettle(t *testing.T) {
	if testing.Short() {
		t.Skip("renders every program")
	}

	const frames = 4 * 44100

	for p := range ProgramCount {
		e := newEngine(t, WithProgram(uint8(p)))
		out := render(e, testutil.StereoImpulse(frames, 32000))

		if peak, _ := testutil.PeakInt16(out); peak == 0 {
			t.Fatalf("program %d (%s): silent", p, e.ProgramName(uint8(p)))
		}

		if last := testutil.LastAbove(out, 4); last >= 2*(frames-44100) {
			t.Fatalf("program %d (%s): tail at sample %d", p, e.ProgramName(uint8(p)), last)
		}
	}
}

func TestSampleAndHold(t *testing.T) {
	e := newEngine(t)
	out := render(e, testutil.StereoNoise(1, 1024))

	for i := 0; i+1 < 1024; i += 2 {
		if out[2*i] != out[2*i+2] || out[2*i+1] != out[2*i+3] {
			t.Fatalf("frame %d: (%d, %d) vs (%d, %d)", i, out[2*i], out[2*i+1], out[2*i+2], out[2*i+3])
		}
	}
}

func TestProgramIndexAliasingOutput(t *testing.T) {
	in := testutil.StereoNoise(2, 4096)

	a := newEngine(t)
	a.SetProgram(0)

	b := newEngine(t)
	b.SetProgram(64)

	testutil.RequireInt16Equal(t, render(b, in), render(a, in))
}

func TestStatePersistsAcrossCalls(t *testing.T) {
	in := testutil.StereoNoise(4, 256)

	whole := newEngine(t, WithProgram(9))
	want := render(whole, in)

	split := newEngine(t, WithProgram(9))
	got := make([]int16, len(in))
	split.Run(in[:256], got[:256], 128)
	split.Run(in[256:], got[256:], 128)

	testutil.RequireInt16Equal(t, got, want)

	if split.State() != whole.State() {
		t.Fatalf("State() = %+v, want %+v", split.State(), whole.State())
	}
}

func TestProcessInPlaceMatchesRun(t *testing.T) {
	in := testutil.StereoNoise(5, 1000)

	want := render(newEngine(t, WithProgram(17)), in)

	buf := append([]int16(nil), in...)
	newEngine(t, WithProgram(17)).Process(buf, buf)

	testutil.RequireInt16Equal(t, buf, want)
}

func TestRegisterInvariants(t *testing.T) {
	in := testutil.StereoNoise(6, 64)

	for p := range ProgramCount {
		e := newEngine(t, WithProgram(uint8(p)))
		out := make([]int16, len(in))

		for range 16 {
			e.Run(in, out, 64)

			s := e.State()
			if s.Ptr > PointerMask {
				t.Fatalf("program %d: ptr = %#x", p, s.Ptr)
			}

			if s.AI > ClampLimit || s.AI < -ClampLimit {
				t.Fatalf("program %d: ai = %d", p, s.AI)
			}
		}
	}
}

func TestPointerDriftsOneWordPerInvocation(t *testing.T) {
	e := newEngine(t)

	e.Run(make([]int16, 2), make([]int16, 2), 1)

	if got := e.State().Ptr; got != PointerMask {
		t.Fatalf("ptr after one invocation = %#x, want %#x", got, PointerMask)
	}

	e.Run(make([]int16, 200), make([]int16, 200), 100)

	if got, want := e.State().Ptr, uint16((-51)&PointerMask); got != want {
		t.Fatalf("ptr after 51 invocations = %#x, want %#x", got, want)
	}
}

func TestRunFrameCounts(t *testing.T) {
	const sentinel = 0x5A5A

	in := make([]int16, 2*8)
	for i := range in {
		in[i] = 16000
	}

	tests := []struct {
		name        string
		frames      int
		written     int
		invocations int
	}{
		{"zero", 0, 0, 0},
		{"negative", -3, 0, 0},
		{"one", 1, 1, 1},
		{"two", 2, 2, 1},
		{"odd", 5, 5, 3},
		{"clamped to buffer", 100, 8, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, WithROM(customROM(t, identityProgram())))

			out := make([]int16, len(in))
			for i := range out {
				out[i] = sentinel
			}

			e.Run(in, out, tt.frames)

			for i := range out {
				touched := i < 2*tt.written
				if touched == (out[i] == sentinel) {
					t.Fatalf("sample %d = %#x, written frames %d", i, out[i], tt.written)
				}
			}

			if got, want := e.State().Ptr, uint16((-tt.invocations)&PointerMask); got != want {
				t.Fatalf("ptr = %#x, want %#x", got, want)
			}
		})
	}
}

func TestZeroValueEngineIsNoOp(t *testing.T) {
	var e Engine

	out := []int16{7, 7, 7, 7}
	e.Run(testutil.StereoNoise(1, 2), out, 2)
	e.Process(out, out)

	testutil.RequireInt16Equal(t, out, []int16{7, 7, 7, 7})

	if e.ProgramName(0) != rom.Default().Name(0) {
		t.Fatalf("ProgramName(0) = %q", e.ProgramName(0))
	}
}

func TestFullScaleInputBounded(t *testing.T) {
	in := make([]int16, 2*8192)
	for i := range in {
		in[i] = 32767
		if (i/64)%2 == 1 {
			in[i] = -32768
		}
	}

	for p := range ProgramCount {
		out := render(newEngine(t, WithProgram(uint8(p))), in)

		for i, v := range out {
			if v > ClampLimit*OutputScale || v < -ClampLimit*OutputScale {
				t.Fatalf("program %d: sample %d = %d", p, i, v)
			}
		}
	}
}

// identityProgram loads the input word at every step with a zero pointer
// increment except the last, which steps back one word.
func identityProgram() [Steps]microcode.Opcode {
	var prog [Steps]microcode.Opcode
	for i := range prog {
		prog[i] = microcode.Encode(microcode.ClassLoad, 0)
	}

	prog[Steps-1] = microcode.Encode(microcode.ClassLoad, PointerMask)

	return prog
}

func TestIdentityProgramPassesFilteredInput(t *testing.T) {
	e := newEngine(t, WithROM(customROM(t, identityProgram())))

	in := make([]int16, 2*8192)
	for i := range in {
		in[i] = 16384
	}

	out := render(e, in)

	// Step 0 reads the word before writing the input, so the first
	// invocation reads zero but latches the fresh input by step 96.
	for i := len(out) - 64; i < len(out); i++ {
		if d := int(out[i]) - 16384; d > 16 || d < -16 {
			t.Fatalf("sample %d = %d, want about 16384", i, out[i])
		}
	}
}

func TestStoreWritesUnclampedAccumulator(t *testing.T) {
	prog := identityProgram()
	for s := 88; s <= 94; s++ {
		prog[s] = microcode.Encode(microcode.ClassAccumulate, 0)
	}

	prog[95] = microcode.Encode(microcode.ClassStore, 0)

	e := newEngine(t, WithROM(customROM(t, prog)))

	in := make([]int16, 2*4096)
	for i := range in {
		in[i] = 16384
	}

	out := render(e, in)

	for i := len(out) - 64; i < len(out); i++ {
		if out[i] != ClampLimit*OutputScale {
			t.Fatalf("sample %d = %d, want %d", i, out[i], ClampLimit*OutputScale)
		}
	}

	if s := e.State(); s.AI != ClampLimit {
		t.Fatalf("ai = %d, want %d", s.AI, ClampLimit)
	}
}

func TestStoreInvertedNegatesWord(t *testing.T) {
	prog := identityProgram()
	prog[95] = microcode.Encode(microcode.ClassStoreInverted, 0)

	e := newEngine(t, WithROM(customROM(t, prog)))

	in := make([]int16, 2*4096)
	for i := range in {
		in[i] = 16384
	}

	out := render(e, in)

	for i := len(out) - 64; i < len(out); i++ {
		if d := int(out[i]) + 8192; d > 16 || d < -16 {
			t.Fatalf("sample %d = %d, want about -8192", i, out[i])
		}
	}
}

func TestReset(t *testing.T) {
	e := newEngine(t, WithProgram(11))
	in := testutil.StereoNoise(8, 2048)

	first := render(e, in)
	e.Reset()

	if e.State() != (State{}) {
		t.Fatalf("State() after Reset = %+v", e.State())
	}

	if e.Program() != 11 {
		t.Fatalf("Program() after Reset = %d, want 11", e.Program())
	}

	testutil.RequireInt16Equal(t, render(e, in), first)
}

func TestInputFilterPassband(t *testing.T) {
	tests := []struct {
		freq     float64
		min, max float64
	}{
		{1000, 0.9, 1.1},
		{15000, 0, 0.3},
	}

	for _, tt := range tests {
		f, err := NewInputFilter(DefaultSampleRate)
		if err != nil {
			t.Fatalf("NewInputFilter() error = %v", err)
		}

		sig := testutil.Sine(tt.freq, DefaultSampleRate, 1, 44100)

		peak := 0.0
		for i, x := range sig {
			y := f.ProcessSample(x)
			if i >= 22050 {
				peak = max(peak, math.Abs(y))
			}
		}

		if peak < tt.min || peak > tt.max {
			t.Fatalf("%v Hz: gain = %.3f, want [%v, %v]", tt.freq, peak, tt.min, tt.max)
		}
	}
}

func TestInputFilterValidation(t *testing.T) {
	if _, err := NewInputFilter(0); err == nil {
		t.Fatal("NewInputFilter(0) succeeded")
	}
}

func BenchmarkRun(b *testing.B) {
	e, err := New()
	if err != nil {
		b.Fatal(err)
	}

	in := testutil.StereoNoise(1, 128)
	out := make([]int16, len(in))

	b.ReportAllocs()
	b.SetBytes(int64(len(in) * 2))
	b.ResetTimer()

	for b.Loop() {
		e.Run(in, out, 128)
	}
}
