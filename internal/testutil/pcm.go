package testutil

import (
	"math/rand"
	"testing"
)

// StereoImpulse returns frames interleaved stereo frames with (amp, amp) in
// frame 0 and silence elsewhere.
func StereoImpulse(frames int, amp int16) []int16 {
	out := make([]int16, 2*frames)
	if frames > 0 {
		out[0], out[1] = amp, amp
	}
	return out
}

// StereoNoise returns frames interleaved stereo frames of uniformly
// distributed 16-bit noise with a fixed seed.
func StereoNoise(seed int64, frames int) []int16 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int16, 2*frames)
	for i := range out {
		out[i] = int16(rng.Intn(65536) - 32768)
	}
	return out
}

// RequireInt16Equal fails t at the first index where got and want differ.
func RequireInt16Equal(t *testing.T, got, want []int16) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

// RequireAllZero fails t if any sample is non-zero.
func RequireAllZero(t *testing.T, data []int16) {
	t.Helper()
	for i, v := range data {
		if v != 0 {
			t.Fatalf("index %d: got %d, want 0", i, v)
		}
	}
}

// PeakInt16 returns the largest absolute sample value and its index.
func PeakInt16(data []int16) (peak int, index int) {
	index = -1
	for i, v := range data {
		a := int(v)
		if a < 0 {
			a = -a
		}
		if a > peak {
			peak, index = a, i
		}
	}
	return peak, index
}

// LastAbove returns the index of the last sample whose magnitude is at
// least threshold, or -1.
func LastAbove(data []int16, threshold int) int {
	for i := len(data) - 1; i >= 0; i-- {
		a := int(data[i])
		if a < 0 {
			a = -a
		}
		if a >= threshold {
			return i
		}
	}
	return -1
}
