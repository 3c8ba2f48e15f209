package rom

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/cwbudde/algo-barrverb/dsp/barrverb/microcode"
)

const (
	// Programs is the number of programs in an image.
	Programs = 64
	// ProgramLen is the number of opcodes per program.
	ProgramLen = 128
	// Words is the total number of opcode words in an image.
	Words = Programs * ProgramLen

	// IndexMask normalizes a program index into 0..63.
	IndexMask = Programs - 1

	maxNameLen = 32
)

// Errors returned when decoding an image.
var (
	ErrShortImage = errors.New("rom: image truncated")
	ErrBadName    = errors.New("rom: invalid program name")
)

// Image is an immutable ROM: opcode words and program names.
type Image struct {
	words [Words]uint16
	names [Programs]string
}

var (
	defaultImage *Image
	defaultOnce  sync.Once
)

// Default returns the built-in ROM. It panics if a built-in program fails
// to assemble, which the package tests rule out.
func Default() *Image {
	defaultOnce.Do(func() {
		img, err := Build()
		if err != nil {
			panic(err)
		}
		defaultImage = img
	})

	return defaultImage
}

// Offset returns the first ROM word of program index & 0x3F.
func Offset(index uint8) int {
	return int(index&IndexMask) << 7
}

// Word returns the opcode word at offset. Offsets wrap around the image.
func (img *Image) Word(offset int) uint16 {
	return img.words[offset&(Words-1)]
}

// Words returns the backing word table. Callers must not modify it.
func (img *Image) Words() *[Words]uint16 {
	return &img.words
}

// Program returns a copy of the opcodes of program index & 0x3F.
func (img *Image) Program(index uint8) []microcode.Opcode {
	base := Offset(index)

	out := make([]microcode.Opcode, ProgramLen)
	for i := range out {
		out[i] = microcode.Opcode(img.words[base+i])
	}

	return out
}

// Name returns the name of program index & 0x3F.
func (img *Image) Name(index uint8) string {
	return img.names[index&IndexMask]
}

// MarshalBinary encodes the image in the flat ROM format.
func (img *Image) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := img.Encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary decodes an image in the flat ROM format.
func (img *Image) UnmarshalBinary(data []byte) error {
	dec, err := Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}

	*img = *dec

	return nil
}

// Encode writes the image in the flat ROM format.
func (img *Image) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, img.words[:]); err != nil {
		return fmt.Errorf("rom: write words: %w", err)
	}

	for _, name := range img.names {
		if _, err := bw.WriteString(name); err != nil {
			return fmt.Errorf("rom: write name: %w", err)
		}

		if err := bw.WriteByte(0); err != nil {
			return fmt.Errorf("rom: write name: %w", err)
		}
	}

	return bw.Flush()
}

// Decode reads an image in the flat ROM format.
func Decode(r io.Reader) (*Image, error) {
	img := &Image{}
	br := bufio.NewReader(r)

	if err := binary.Read(br, binary.LittleEndian, img.words[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: opcode table", ErrShortImage)
		}

		return nil, fmt.Errorf("rom: read words: %w", err)
	}

	for i := range img.names {
		raw, err := br.ReadString(0)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: name %d", ErrShortImage, i)
			}

			return nil, fmt.Errorf("rom: read name %d: %w", i, err)
		}

		name := raw[:len(raw)-1]
		if err := validateName(name); err != nil {
			return nil, fmt.Errorf("%w: program %d: %w", ErrBadName, i, err)
		}

		img.names[i] = name
	}

	return img, nil
}

// NewImage builds an image from raw words and names.
func NewImage(words *[Words]uint16, names *[Programs]string) (*Image, error) {
	img := &Image{words: *words}

	for i, name := range names {
		if err := validateName(name); err != nil {
			return nil, fmt.Errorf("%w: program %d: %w", ErrBadName, i, err)
		}

		img.names[i] = name
	}

	return img, nil
}

func validateName(name string) error {
	if name == "" {
		return errors.New("empty")
	}

	if len(name) > maxNameLen {
		return fmt.Errorf("longer than %d bytes", maxNameLen)
	}

	for i := range len(name) {
		if c := name[i]; c < 0x20 || c > 0x7E {
			return fmt.Errorf("non-printable byte %#02x", c)
		}
	}

	return nil
}
