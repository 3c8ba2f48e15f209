// Package playback streams the reverb engine to the system audio device
// and handles the single-key program controls of the play command.
package playback

import (
	"sync"
	"time"

	"github.com/cwbudde/algo-barrverb/dsp/core"
	"github.com/cwbudde/algo-barrverb/dsp/pcm"
	"github.com/cwbudde/algo-barrverb/dsp/signal"
)

// Engine is the part of the reverb engine a Stream drives.
type Engine interface {
	Run(input, output []int16, frames int)
	SetProgram(index uint8)
	Program() uint8
	ProgramName(index uint8) string
}

// Stream renders a test source through an engine block by block and
// serves the result as 16-bit little-endian stereo bytes. Read may be
// called from the audio device goroutine while the control methods are
// called from elsewhere.
type Stream struct {
	mu     sync.Mutex
	engine Engine
	source *signal.Source
	in     []int16
	out    []int16
	bytes  []byte
	// unread bytes left in bytes from the last block
	pending []byte
}

// NewStream returns a stream rendering blocks of cfg.BlockSize frames.
func NewStream(e Engine, src *signal.Source, cfg core.ProcessorConfig) *Stream {
	n := cfg.BlockSamples()
	return &Stream{
		engine: e,
		source: src,
		in:     make([]int16, n),
		out:    make([]int16, n),
		bytes:  make([]byte, 2*n),
	}
}

// Read fills p with rendered audio. It always returns len(p) bytes.
func (s *Stream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for n < len(p) {
		if len(s.pending) == 0 {
			s.render()
		}
		c := copy(p[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}
	return n, nil
}

func (s *Stream) render() {
	s.source.Fill(s.in)
	s.engine.Run(s.in, s.out, pcm.Frames(s.in))
	pcm.Encode(s.bytes, s.out)
	s.pending = s.bytes
}

// BlockPeriod returns the playing time of one rendered block at
// sampleRate, never less than a nanosecond.
func (s *Stream) BlockPeriod(sampleRate int) time.Duration {
	frames := len(s.bytes) / pcm.BytesPerFrame
	if sampleRate <= 0 {
		return time.Nanosecond
	}
	return max(time.Duration(frames)*time.Second/time.Duration(sampleRate), time.Nanosecond)
}

// Step moves the program selection by delta, wrapping within 0..63, and
// returns the new program and its name.
func (s *Stream) Step(delta int) (uint8, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := uint8((int(s.engine.Program()) + delta) & 0x3F)
	s.engine.SetProgram(p)
	return p, s.engine.ProgramName(p)
}

// NextSource switches to the following test source and returns it.
func (s *Stream) NextSource() signal.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source.Next()
}
