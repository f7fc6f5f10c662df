package audio

import (
	"bytes"
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// Sink is one playable audio stream. The controller is the only code that
// touches a sink after creation.
type Sink interface {
	Play()
	Pause()
	// IsPlaying reports whether the sink is actively producing sound. It
	// returns false once the buffer is exhausted or after Pause.
	IsPlaying() bool
	// Close stops the stream and releases the underlying device resources.
	Close() error
}

// SinkFactory creates a sink for one PCM buffer. Creation failure means the
// data could not be prepared for the output device.
type SinkFactory func(pcm []byte) (Sink, error)

// NewOtoFactory opens the system audio device and returns a factory that
// plays 24 kHz mono 16-bit PCM buffers through it. The device context is
// shared by every sink the factory creates.
func NewOtoFactory() (SinkFactory, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	return func(pcm []byte) (Sink, error) {
		return &otoSink{player: ctx.NewPlayer(bytes.NewReader(pcm))}, nil
	}, nil
}

type otoSink struct {
	player *oto.Player
}

func (s *otoSink) Play()           { s.player.Play() }
func (s *otoSink) Pause()          { s.player.Pause() }
func (s *otoSink) IsPlaying() bool { return s.player.IsPlaying() }
func (s *otoSink) Close() error    { return s.player.Close() }
