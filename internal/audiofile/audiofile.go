// Package audiofile reads WAV and MP3 files into interleaved int16 stereo
// and writes int16 stereo WAV files.
package audiofile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/cwbudde/algo-barrverb/dsp/pcm"
)

// Errors returned by the decoders.
var (
	ErrUnsupported = errors.New("audiofile: unsupported file type")
	ErrInvalidWAV  = errors.New("audiofile: not a valid wav file")
	ErrEmpty       = errors.New("audiofile: no audio data")
)

// Audio is interleaved 16-bit stereo at SampleRate.
type Audio struct {
	SampleRate int
	Samples    []int16
}

// Frames returns the number of stereo frames.
func (a *Audio) Frames() int { return pcm.Frames(a.Samples) }

// Load decodes path, choosing the decoder from the file extension.
func Load(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return DecodeWAV(f)
	case ".mp3":
		return DecodeMP3(f)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
}

// DecodeWAV reads a PCM WAV stream. Mono input is duplicated into both
// channels, channels beyond the second are dropped and other bit depths
// are rescaled to 16 bits.
func DecodeWAV(r io.ReadSeeker) (*Audio, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, ErrInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audiofile: wav: %w", err)
	}

	chans := int(dec.NumChans)
	if chans == 0 || len(buf.Data) < chans {
		return nil, ErrEmpty
	}

	depth := int(dec.BitDepth)
	frames := len(buf.Data) / chans
	out := make([]int16, 2*frames)

	for i := range frames {
		l := to16(buf.Data[i*chans], depth)
		r := l
		if chans > 1 {
			r = to16(buf.Data[i*chans+1], depth)
		}
		out[2*i], out[2*i+1] = l, r
	}

	return &Audio{SampleRate: int(dec.SampleRate), Samples: out}, nil
}

// DecodeMP3 reads an MP3 stream. The decoder always yields 16-bit
// little-endian stereo.
func DecodeMP3(r io.Reader) (*Audio, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("audiofile: mp3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("audiofile: mp3: %w", err)
	}

	frames := len(raw) / pcm.BytesPerFrame
	if frames == 0 {
		return nil, ErrEmpty
	}

	out := make([]int16, 2*frames)
	pcm.Decode(out, raw)

	return &Audio{SampleRate: dec.SampleRate(), Samples: out}, nil
}

// Save writes a as a 16-bit stereo WAV file at path.
func Save(path string, a *Audio) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return EncodeWAV(f, a)
}

// EncodeWAV writes a as a 16-bit stereo PCM WAV stream.
func EncodeWAV(w io.WriteSeeker, a *Audio) error {
	if a.SampleRate <= 0 {
		return fmt.Errorf("audiofile: sample rate must be > 0: %d", a.SampleRate)
	}

	enc := wav.NewEncoder(w, a.SampleRate, 16, 2, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: a.SampleRate},
		Data:           make([]int, 2*a.Frames()),
		SourceBitDepth: 16,
	}
	for i := range buf.Data {
		buf.Data[i] = int(a.Samples[i])
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("audiofile: wav: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("audiofile: wav: %w", err)
	}

	return nil
}

func to16(v, depth int) int16 {
	switch {
	case depth == 8:
		return int16((v - 128) << 8)
	case depth > 16:
		return int16(v >> (depth - 16))
	case depth < 16 && depth > 0:
		return int16(v << (16 - depth))
	}
	return int16(v)
}
