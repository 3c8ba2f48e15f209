package signal

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects a streaming test source.
type Kind int

// Test sources, in the order Next cycles through them.
const (
	Silence Kind = iota
	Impulse
	Sawtooth
	Sine
	kindCount
)

const (
	// ImpulseAmplitude is the value of each periodic impulse.
	ImpulseAmplitude = 32000
	// SawStep is the sawtooth phase increment per frame.
	SawStep = 200
	// SineStep is the sine phase increment per frame in radians.
	SineStep = 0.01
	// SineAmplitude is the sine peak value.
	SineAmplitude = 30000
)

var kindNames = [kindCount]string{"silence", "impulse", "saw", "sine"}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("signal: unknown source %q (want one of %s)", s, strings.Join(kindNames[:], ", "))
}

// Source streams one of the test sources into interleaved stereo blocks.
// Phase and impulse timer carry across calls to Fill.
type Source struct {
	kind     Kind
	interval int
	timer    int
	phase    uint32
}

// NewSource returns a source of the given kind. The impulse repeats after
// interval silent frames; non-positive intervals use 44100.
func NewSource(kind Kind, interval int) *Source {
	if interval <= 0 {
		interval = 44100
	}
	return &Source{kind: kind, interval: interval}
}

// Kind returns the active source.
func (s *Source) Kind() Kind { return s.kind }

// SetKind switches the source without resetting its phase.
func (s *Source) SetKind(k Kind) { s.kind = k }

// Next switches to the following source, wrapping after Sine, and returns it.
func (s *Source) Next() Kind {
	s.kind = (s.kind + 1) % kindCount
	return s.kind
}

// Reset clears phase and impulse timer.
func (s *Source) Reset() {
	s.phase = 0
	s.timer = 0
}

// Fill writes whole frames into buf and returns the number written.
func (s *Source) Fill(buf []int16) int {
	frames := len(buf) / 2
	for i := range frames {
		var v int16
		switch s.kind {
		case Impulse:
			if s.timer == 0 {
				v = ImpulseAmplitude
				s.timer = s.interval
			} else {
				s.timer--
			}
		case Sawtooth:
			v = int16(uint16(s.phase) ^ 0x8000)
			s.phase += SawStep
		case Sine:
			v = int16(math.Sin(float64(s.phase)*SineStep) * SineAmplitude)
			s.phase++
		}
		buf[2*i], buf[2*i+1] = v, v
	}
	return frames
}
