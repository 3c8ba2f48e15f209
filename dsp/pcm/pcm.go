package pcm

import (
	"encoding/binary"

	"github.com/cwbudde/algo-barrverb/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// FullScale is the magnitude that maps to 1.0.
const FullScale = 32768

// BytesPerFrame is the encoded size of one stereo frame.
const BytesPerFrame = 4

// Frames returns the number of whole stereo frames in an interleaved buffer.
func Frames(interleaved []int16) int {
	return len(interleaved) / 2
}

// ToFloat converts src to floats in [-1, 1). It returns the number of
// converted samples.
func ToFloat(dst []float64, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float64(src[i])
	}

	vecmath.ScaleBlock(dst[:n], dst[:n], 1.0/FullScale)

	return n
}

// FromFloat converts src to int16, truncating toward zero and saturating.
func FromFloat(dst []int16, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = core.SaturateInt16(src[i] * FullScale)
	}

	return n
}

// Mono writes the normalized mono sum (L+R)/2 of each frame in src to dst.
func Mono(dst []float64, src []int16) int {
	n := min(len(dst), Frames(src))
	for i := range n {
		dst[i] = float64(src[2*i]) + float64(src[2*i+1])
	}

	vecmath.ScaleBlock(dst[:n], dst[:n], 0.5/FullScale)

	return n
}

// Split separates src into normalized left and right channels.
func Split(left, right []float64, src []int16) int {
	n := min(len(left), len(right), Frames(src))
	for i := range n {
		left[i] = float64(src[2*i])
		right[i] = float64(src[2*i+1])
	}

	vecmath.ScaleBlock(left[:n], left[:n], 1.0/FullScale)
	vecmath.ScaleBlock(right[:n], right[:n], 1.0/FullScale)

	return n
}

// Duplicate copies a mono int16 signal into both channels of dst.
func Duplicate(dst []int16, mono []int16) int {
	n := min(Frames(dst), len(mono))
	for i := range n {
		dst[2*i], dst[2*i+1] = mono[i], mono[i]
	}

	return n
}

// Encode writes src as little-endian bytes and returns the bytes written.
func Encode(dst []byte, src []int16) int {
	n := min(len(dst)/2, len(src))
	for i := range n {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(src[i]))
	}

	return 2 * n
}

// Decode reads little-endian samples from src and returns the samples
// read. A trailing odd byte is ignored.
func Decode(dst []int16, src []byte) int {
	n := min(len(dst), len(src)/2)
	for i := range n {
		dst[i] = int16(binary.LittleEndian.Uint16(src[2*i:]))
	}

	return n
}
