//go:build !headless

package playback

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Output plays a 16-bit stereo stream on the default audio device.
type Output struct {
	mu     sync.Mutex
	ctx    *oto.Context
	player *oto.Player
}

// Open creates the audio context and a player reading from src.
func Open(sampleRate int, src *Stream) (*Output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	return &Output{ctx: ctx, player: ctx.NewPlayer(src)}, nil
}

// Start begins playback.
func (o *Output) Start() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.player != nil {
		o.player.Play()
	}
}

// Close stops playback and reports any error the player hit.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.player == nil {
		return nil
	}
	o.player.Pause()
	err := o.player.Err()
	o.player = nil
	return err
}
