package adapter

import (
	"io"

	"go.uber.org/zap"
)

// PlayerSource creates the backing player for a supported format. mediaType
// is the tag exactly as passed to Play.
type PlayerSource func(format Format, mediaType string, w io.Writer) AdvancedMediaPlayer

// Option configures an Adaptor or Player.
type Option func(*Adaptor)

// WithLogger sets the logger used to report unsupported formats.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("adapter: WithLogger(nil)")
	}
	return func(a *Adaptor) {
		a.lggr = l
	}
}

// WithPlayerSource replaces the built-in players. Panics on nil.
func WithPlayerSource(fn PlayerSource) Option {
	if fn == nil {
		panic("adapter: WithPlayerSource(nil)")
	}
	return func(a *Adaptor) {
		a.source = fn
	}
}

// defaultSource returns the concrete player of each family.
func defaultSource(format Format, mediaType string, w io.Writer) AdvancedMediaPlayer {
	switch format {
	case FormatVlc:
		return NewVlcPlayer(w)
	case FormatMp4:
		return NewMp4Player(w)
	default:
		return NewAudioPlayer(w, mediaType)
	}
}
