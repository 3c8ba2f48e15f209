package playback

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned by OpenKeys when the file is not a terminal.
var ErrNotTerminal = errors.New("playback: not a terminal")

// Keys reads single key presses from a terminal in raw mode.
type Keys struct {
	f     *os.File
	state *term.State
}

// OpenKeys puts f into raw mode. Close restores it.
func OpenKeys(f *os.File) (*Keys, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	return &Keys{f: f, state: state}, nil
}

// ReadKey blocks until a key is pressed.
func (k *Keys) ReadKey() (byte, error) {
	var b [1]byte
	for {
		n, err := k.f.Read(b[:])
		if n == 1 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// Close restores the terminal state.
func (k *Keys) Close() error {
	if k.state == nil {
		return nil
	}
	err := term.Restore(int(k.f.Fd()), k.state)
	k.state = nil
	return err
}
