// Package signal generates interleaved int16 stereo test signals.
//
// Generator renders finite buffers (sine, white noise, impulse) for
// offline rendering and measurements. Source streams the four test
// sources of the hardware test rig (silence, a periodic impulse, a
// sawtooth and a sine) block by block.
package signal
