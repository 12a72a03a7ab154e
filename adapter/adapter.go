package adapter

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// MediaPlayer is the uniform playback interface.
type MediaPlayer interface {
	Play(mediaType, fileName string) error
}

// Adaptor exposes AdvancedMediaPlayer implementations as a MediaPlayer.
type Adaptor struct {
	w      io.Writer
	lggr   *zap.Logger
	source PlayerSource
}

// NewAdaptor returns an Adaptor writing to w.
func NewAdaptor(w io.Writer, opts ...Option) *Adaptor {
	a := &Adaptor{
		w:      w,
		lggr:   zap.NewNop(),
		source: defaultSource,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Play dispatches fileName to the player of mediaType's family. Unsupported
// types write a diagnostic and return nil.
func (a *Adaptor) Play(mediaType, fileName string) error {
	lowered := lower(mediaType)
	format, ok := formatOf(lowered)
	if !ok {
		a.lggr.Warn("unsupported media format",
			zap.String("mediaType", lowered),
			zap.String("file", fileName))
		_, err := fmt.Fprintf(a.w, "Invalid media. %s format not supported\n", lowered)

		return err
	}

	p := a.source(format, mediaType, a.w)
	switch format {
	case FormatVlc:
		return p.PlayVlc(fileName)
	case FormatMp4:
		return p.PlayMp4(fileName)
	default:
		return p.PlayAudio(fileName)
	}
}

// Player is the client-facing MediaPlayer. Its Adaptor is created on the
// first Play.
type Player struct {
	w       io.Writer
	opts    []Option
	adaptor *Adaptor
}

// NewPlayer returns a Player writing to w; opts are forwarded to its Adaptor.
func NewPlayer(w io.Writer, opts ...Option) *Player {
	return &Player{w: w, opts: opts}
}

// Play implements MediaPlayer.
func (p *Player) Play(mediaType, fileName string) error {
	if p.adaptor == nil {
		p.adaptor = NewAdaptor(p.w, p.opts...)
	}

	return p.adaptor.Play(mediaType, fileName)
}

var (
	_ MediaPlayer = (*Adaptor)(nil)
	_ MediaPlayer = (*Player)(nil)
)
