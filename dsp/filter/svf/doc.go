// Package svf provides a resonant low-pass state-variable filter.
//
// The filter is the two-integrator topology used by early digital reverb
// front ends to emulate an analog anti-alias stage. Coefficients are
// derived from a cutoff frequency, a quality factor and the sample rate:
//
//	w  = 2 tan(pi fc / fs)
//	a  = w / q
//	b  = w^2
//	c1 = (a + b) / (1 + a/2 + b/4)
//	c2 = b / (a + b)
//	d0 = c1 c2 / 4
//
// Per-sample processing advances two delay registers and returns the
// low-pass output. Coefficients change only when SetFreq is called.
package svf
