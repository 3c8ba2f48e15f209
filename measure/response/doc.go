// Package response measures the frequency response of sample processors
// such as the reverb input filter.
//
// Magnitude takes the FFT of the processor's impulse response. ToneGain
// drives the processor with a sine and evaluates the single output bin
// with the Goertzel recurrence, which is what the passband checks use.
package response
