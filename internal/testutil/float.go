package testutil

import (
	"math"
	"testing"
)

// Sine returns n samples of amp*sin(2*pi*freqHz*i/sampleRate).
func Sine(freqHz, sampleRate, amp float64, n int) []float64 {
	out := make([]float64, n)
	w := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amp * math.Sin(w*float64(i))
	}
	return out
}

// RequireNearlyEqual fails t unless got and want have the same length and
// every pair is within eps.
func RequireNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps || math.IsNaN(d) {
			t.Fatalf("index %d: got %v, want %v (|diff| %g > %g)", i, got[i], want[i], d, eps)
		}
	}
}
