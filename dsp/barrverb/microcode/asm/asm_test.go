package asm

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-barrverb/dsp/barrverb/microcode"
)

// walk replays the pointer of an assembled program and returns the relative
// address touched by every step.
func walk(p Program) [Steps]int {
	var addrs [Steps]int

	rel := 0
	for s, op := range p.Code {
		addrs[s] = rel
		rel = (rel + int(op.Delta())) & microcode.DeltaMask
	}

	return addrs
}

func TestAssemblePlacesIOSteps(t *testing.T) {
	b := New("copy")
	in := b.Input(10)
	line := b.Line(100)
	b.Load(in.Tap(3))
	b.Store(line.Head())
	b.OutputRight(line.Tap(40))
	b.OutputLeft(in.Tap(7))

	p, err := b.Assemble()
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	addrs := walk(p)
	if addrs[microcode.StepInput] != in.Head().Addr() {
		t.Errorf("step 0 address = %d, want input head %d", addrs[0], in.Head().Addr())
	}

	if got, want := addrs[microcode.StepOutRight], line.Tap(40).Addr(); got != want {
		t.Errorf("right output address = %d, want %d", got, want)
	}

	if got, want := addrs[microcode.StepOutLeft], in.Tap(7).Addr(); got != want {
		t.Errorf("left output address = %d, want %d", got, want)
	}

	if p.Code[1].Class() != microcode.ClassLoad || addrs[1] != in.Tap(3).Addr() {
		t.Errorf("step 1 = %v @%d, want load @%d", p.Code[1], addrs[1], in.Tap(3).Addr())
	}

	if p.Code[2].Class() != microcode.ClassStore || addrs[2] != line.Head().Addr() {
		t.Errorf("step 2 = %v @%d, want store @%d", p.Code[2], addrs[2], line.Head().Addr())
	}

	if p.Words != in.Words()+line.Words() {
		t.Errorf("Words = %d, want %d", p.Words, in.Words()+line.Words())
	}
}

func TestAssemblePointerDriftsByMinusOne(t *testing.T) {
	b := New("drift")
	in := b.Input(0)
	b.Load(in.Head())
	b.OutputRight(in.Head())
	b.OutputLeft(in.Head())

	p, err := b.Assemble()
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	total := 0
	for _, op := range p.Code {
		total += int(op.Delta())
	}

	if got := total & microcode.DeltaMask; got != ScratchWords-1 {
		t.Fatalf("total increment = %#x, want %#x", got, ScratchWords-1)
	}
}

func TestAssembleSkipsReservedSlots(t *testing.T) {
	b := New("long")
	in := b.Input(200)
	for i := range Slots {
		if i == 0 {
			b.Load(in.Tap(i))
			continue
		}

		b.Add(in.Tap(i))
	}

	b.OutputRight(in.Tap(150))
	b.OutputLeft(in.Tap(160))

	p, err := b.Assemble()
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	addrs := walk(p)

	want := 0
	for s := 1; s < Steps; s++ {
		if s == microcode.StepOutRight || s == microcode.StepOutLeft {
			continue
		}

		if addrs[s] != in.Tap(want).Addr() {
			t.Fatalf("step %#02x address = %d, want %d", s, addrs[s], in.Tap(want).Addr())
		}
		want++
	}
}

func TestAllpassShape(t *testing.T) {
	b := New("ap")
	in := b.Input(0)
	ap := b.Line(17)
	b.Load(in.Head())
	b.Allpass(ap)
	b.OutputRight(ap.Head())
	b.OutputLeft(ap.Head())

	p, err := b.Assemble()
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	addrs := walk(p)
	want := []struct {
		class microcode.Class
		addr  int
	}{
		{microcode.ClassAccumulate, ap.End().Addr()},
		{microcode.ClassStoreInverted, ap.Head().Addr()},
		{microcode.ClassAccumulate, ap.End().Addr()},
		{microcode.ClassAccumulate, ap.End().Addr()},
	}

	for i, w := range want {
		s := i + 2
		if p.Code[s].Class() != w.class || addrs[s] != w.addr {
			t.Errorf("step %d = %v @%d, want %v @%d", s, p.Code[s].Class(), addrs[s], w.class, w.addr)
		}
	}
}

func TestMix(t *testing.T) {
	b := New("mix")
	in := b.Input(30)
	single := b.Mix(in.Tap(4))
	if single.Addr() != in.Tap(4).Addr() {
		t.Fatalf("single-tap mix should be the tap itself")
	}

	sum := b.Mix(in.Tap(1), in.Tap(2), in.Tap(3))
	if sum.Addr() != in.Words() {
		t.Fatalf("mix word at %d, want %d", sum.Addr(), in.Words())
	}

	if len(b.code) != 4 {
		t.Fatalf("mix emitted %d instructions, want 4", len(b.code))
	}
}

func TestAssembleErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
		want  error
	}{
		{
			name: "no input",
			build: func(b *Builder) {
				l := b.Line(4)
				b.Load(l.Head())
				b.OutputRight(l.Head())
				b.OutputLeft(l.Head())
			},
			want: ErrNoInput,
		},
		{
			name: "no output",
			build: func(b *Builder) {
				in := b.Input(4)
				b.Load(in.Head())
				b.OutputRight(in.Head())
			},
			want: ErrNoOutput,
		},
		{
			name: "first not load",
			build: func(b *Builder) {
				in := b.Input(4)
				b.Add(in.Head())
				b.OutputRight(in.Head())
				b.OutputLeft(in.Head())
			},
			want: ErrFirstNotLoad,
		},
		{
			name: "tap range",
			build: func(b *Builder) {
				in := b.Input(4)
				b.Load(in.Tap(5))
				b.OutputRight(in.Head())
				b.OutputLeft(in.Head())
			},
			want: ErrTapRange,
		},
		{
			name: "scratch overflow",
			build: func(b *Builder) {
				in := b.Input(ScratchWords)
				b.Load(in.Head())
				b.OutputRight(in.Head())
				b.OutputLeft(in.Head())
			},
			want: ErrScratchOverflow,
		},
		{
			name: "too many steps",
			build: func(b *Builder) {
				in := b.Input(4)
				for range Slots + 1 {
					b.Load(in.Head())
				}
				b.OutputRight(in.Head())
				b.OutputLeft(in.Head())
			},
			want: ErrTooManySteps,
		},
		{
			name: "duplicate input",
			build: func(b *Builder) {
				in := b.Input(4)
				b.Input(4)
				b.Load(in.Head())
				b.OutputRight(in.Head())
				b.OutputLeft(in.Head())
			},
			want: ErrDuplicateInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.name)
			tc.build(b)

			if _, err := b.Assemble(); !errors.Is(err, tc.want) {
				t.Fatalf("Assemble() error = %v, want %v", err, tc.want)
			}
		})
	}
}
