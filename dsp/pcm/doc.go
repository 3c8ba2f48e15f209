// Package pcm converts between interleaved 16-bit stereo PCM and float
// buffers.
//
// The convention throughout is little-endian int16, left channel first,
// full scale 32768.
package pcm
