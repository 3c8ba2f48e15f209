package svf

import (
	"fmt"
	"math"
)

// maxCutoffRatio keeps tan() on its first branch when a cutoff is requested
// at or above Nyquist.
const maxCutoffRatio = 0.499

// Coefficients holds the derived filter coefficients.
type Coefficients struct {
	C1, C2, D0 float64
}

// Filter is a single low-pass state-variable filter stage.
//
// The zero value passes nothing; configure it with SetFreq or New.
type Filter struct {
	cutoffHz   float64
	q          float64
	sampleRate float64

	coef Coefficients

	z1, z2 float64
}

// New returns a filter configured for the given cutoff, quality factor and
// sample rate.
func New(cutoffHz, q, sampleRate float64) (*Filter, error) {
	f := &Filter{}
	if err := f.SetFreq(cutoffHz, q, sampleRate); err != nil {
		return nil, err
	}

	return f, nil
}

// SetFreq recomputes coefficients and clears the delay registers.
func (f *Filter) SetFreq(cutoffHz, q, sampleRate float64) error {
	if !isFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("svf: sample rate must be > 0 and finite: %f", sampleRate)
	}

	if !isFinite(cutoffHz) || cutoffHz <= 0 {
		return fmt.Errorf("svf: cutoff must be > 0 and finite: %f", cutoffHz)
	}

	if !isFinite(q) || q <= 0 {
		return fmt.Errorf("svf: q must be > 0 and finite: %f", q)
	}

	f.cutoffHz = cutoffHz
	f.q = q
	f.sampleRate = sampleRate
	f.z1, f.z2 = 0, 0

	ratio := min(cutoffHz/sampleRate, maxCutoffRatio)

	w := 2 * math.Tan(math.Pi*ratio)
	a := w / q
	b := w * w

	c1 := (a + b) / (1 + a*0.5 + b*0.25)
	c2 := b / (a + b)
	f.coef = Coefficients{C1: c1, C2: c2, D0: c1 * c2 * 0.25}

	return nil
}

// CutoffHz returns the configured cutoff frequency in Hz.
func (f *Filter) CutoffHz() float64 { return f.cutoffHz }

// Q returns the configured quality factor.
func (f *Filter) Q() float64 { return f.q }

// SampleRate returns the configured sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Coefficients returns a copy of the derived coefficients.
func (f *Filter) Coefficients() Coefficients { return f.coef }

// Reset clears the delay registers without touching coefficients.
func (f *Filter) Reset() {
	f.z1, f.z2 = 0, 0
}

// ProcessSample filters one sample and returns the low-pass output.
func (f *Filter) ProcessSample(x float64) float64 {
	t := x - f.z1 - f.z2
	// z2 must see z1 before it is advanced.
	f.z2 += f.coef.C2 * f.z1
	f.z1 += f.coef.C1 * t

	return f.coef.D0*t + f.z2
}

// ProcessInPlace filters buf in place.
func (f *Filter) ProcessInPlace(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
