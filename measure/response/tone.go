package response

import "math"

// ToneGain resets p, drives it with a unit sine at freqHz for frames
// samples and returns the output amplitude at freqHz. Only whole cycles in
// the second half are measured so the start transient is excluded. p is
// reset again on return. Invalid arguments yield 0.
func ToneGain(p Processor, freqHz, sampleRate float64, frames int) float64 {
	if !validRate(sampleRate) || freqHz <= 0 || freqHz >= sampleRate/2 || frames < 2 {
		return 0
	}

	n := frames - frames/2
	if cycles := math.Floor(float64(n) * freqHz / sampleRate); cycles > 0 {
		n = int(math.Round(cycles * sampleRate / freqHz))
	}

	start := frames - n
	step := 2 * math.Pi * freqHz / sampleRate
	coeff := 2 * math.Cos(step)

	p.Reset()
	defer p.Reset()

	var s0, s1 float64

	for i := range frames {
		y := p.ProcessSample(math.Sin(step * float64(i)))
		if i < start {
			continue
		}

		s0, s1 = y+coeff*s0-s1, s0
	}

	power := s0*s0 + s1*s1 - coeff*s0*s1
	if power <= 0 {
		return 0
	}

	return 2 * math.Sqrt(power) / float64(n)
}
