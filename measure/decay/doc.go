// Package decay measures how a reverb program's impulse response dies
// away.
//
// The analysis works on interleaved int16 stereo output, the native
// format of the engine:
//
//   - RT60: reverberation time from the Schroeder curve (T30, else T20)
//   - EDT: early decay time (0 to -10 dB, extrapolated)
//   - Tail: time until the output last reaches the steady-state threshold
//   - Peak and PeakIndex: largest sample magnitude and the frame it is in
//
// # Usage
//
//	e, _ := barrverb.New(barrverb.WithProgram(3))
//	ir := decay.ImpulseResponse(e, 4*44100, 32000)
//	m, err := decay.NewAnalyzer(44100).Analyze(ir)
package decay
