package signal

import (
	"testing"

	"github.com/cwbudde/algo-barrverb/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator([]core.ProcessorOption{core.WithSampleRate(48000)})
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 128 {
		t.Fatalf("len = %d, want 128", len(s))
	}
	for i := 0; i < len(s); i += 2 {
		if s[i] != s[i+1] {
			t.Fatalf("frame %d: channels differ (%d, %d)", i/2, s[i], s[i+1])
		}
	}
}

func TestSineValidation(t *testing.T) {
	g := NewGenerator(nil)
	tests := []struct {
		name      string
		freq, amp float64
		frames    int
	}{
		{"frames", 1000, 1, 0},
		{"zero freq", 0, 1, 8},
		{"nyquist", 22050, 1, 8},
		{"amplitude", 1000, 1.5, 8},
	}
	for _, tt := range tests {
		if _, err := g.Sine(tt.freq, tt.amp, tt.frames); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGenerator(nil, WithSeed(42))
	g2 := NewGenerator(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}

	if g1.Seed() != 42 {
		t.Fatalf("Seed() = %d, want 42", g1.Seed())
	}

	if _, err := g1.WhiteNoise(-1, 16); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestDifferentSeeds(t *testing.T) {
	a, _ := NewGenerator(nil, WithSeed(99)).WhiteNoise(1, 8)
	b, _ := NewGenerator(nil, WithSeed(100)).WhiteNoise(1, 8)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestImpulse(t *testing.T) {
	g := NewGenerator(nil)
	x, err := g.Impulse(32000, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []int16{32000, 32000, 0, 0, 0, 0, 0, 0}
	for i := range want {
		if x[i] != want[i] {
			t.Fatalf("x = %v, want %v", x, want)
		}
	}
	if _, err := g.Impulse(1, 0); err == nil {
		t.Fatal("expected error for zero frames")
	}
}

func TestSeconds(t *testing.T) {
	g := NewGenerator([]core.ProcessorOption{core.WithSampleRate(48000)})
	if got := g.Seconds(1.5); got != 72000 {
		t.Fatalf("Seconds(1.5) = %d, want 72000", got)
	}
	if g.Config().SampleRate != 48000 {
		t.Fatalf("Config().SampleRate = %v", g.Config().SampleRate)
	}
}
