package audiofile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-barrverb/internal/testutil"
)

func TestWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	in := &Audio{SampleRate: 44100, Samples: testutil.StereoNoise(11, 1000)}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.SampleRate != 44100 || got.Frames() != 1000 {
		t.Fatalf("got %d Hz, %d frames", got.SampleRate, got.Frames())
	}

	testutil.RequireInt16Equal(t, got.Samples, in.Samples)
}

func TestDecodeWAVInvalid(t *testing.T) {
	if _, err := DecodeWAV(bytes.NewReader([]byte("RIFF nonsense"))); !errors.Is(err, ErrInvalidWAV) {
		t.Fatalf("error = %v, want ErrInvalidWAV", err)
	}
}

func TestDecodeMP3Invalid(t *testing.T) {
	if _, err := DecodeMP3(bytes.NewReader(make([]byte, 64))); err == nil {
		t.Fatal("expected error for non-mp3 input")
	}
}

func TestLoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.flac")
	if err := os.WriteFile(path, []byte{0}, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("error = %v, want ErrUnsupported", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEncodeWAVBadRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := Save(path, &Audio{}); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestTo16(t *testing.T) {
	tests := []struct {
		v, depth int
		want     int16
	}{
		{-1000, 16, -1000},
		{0, 8, -32768},
		{255, 8, 32512},
		{1<<23 - 1, 24, 32767},
		{-(1 << 23), 24, -32768},
		{-2048, 12, -32768},
	}
	for _, tt := range tests {
		if got := to16(tt.v, tt.depth); got != tt.want {
			t.Errorf("to16(%d, %d) = %d, want %d", tt.v, tt.depth, got, tt.want)
		}
	}
}
