//go:build headless

package playback

import (
	"sync"
	"time"
)

// Output drains a stream in real time without an audio device.
type Output struct {
	src        *Stream
	sampleRate int
	stop       chan struct{}
	done       chan struct{}
	startOnce  sync.Once
	stopOnce   sync.Once
}

// Open returns an output that will read from src at sampleRate.
func Open(sampleRate int, src *Stream) (*Output, error) {
	return &Output{
		src:        src,
		sampleRate: sampleRate,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}, nil
}

// Start begins draining one block per block period.
func (o *Output) Start() {
	o.startOnce.Do(func() {
		go o.drain()
	})
}

func (o *Output) drain() {
	defer close(o.done)
	buf := make([]byte, len(o.src.bytes))
	t := time.NewTicker(o.src.BlockPeriod(o.sampleRate))
	defer t.Stop()
	for {
		select {
		case <-o.stop:
			return
		case <-t.C:
			o.src.Read(buf)
		}
	}
}

// Close stops draining and waits for the drain goroutine to exit.
func (o *Output) Close() error {
	o.stopOnce.Do(func() { close(o.stop) })
	// Without a prior Start there is nothing to wait for.
	o.startOnce.Do(func() { close(o.done) })
	<-o.done
	return nil
}
