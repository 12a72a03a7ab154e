package adapter_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/patterns/adapter"
)

// recorder is an AdvancedMediaPlayer that records every call.
type recorder struct {
	calls []string
}

func (r *recorder) PlayAudio(f string) error { return r.record("audio:" + f) }
func (r *recorder) PlayVlc(f string) error { return r.record("vlc:" + f) }
func (r *recorder) PlayMp4(f string) error { return r.record("mp4:" + f) }

func (r *recorder) record(call string) error {
	r.calls = append(r.calls, call)
	return nil
}

// recordingSource hands out rec for every format and counts creations.
func recordingSource(rec *recorder, created *int) adapter.PlayerSource {
	return func(adapter.Format, string, io.Writer) adapter.AdvancedMediaPlayer {
		*created++
		return rec
	}
}

func TestAdaptor_Play(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mediaType, file string
		want            string
	}{
		{"mp3", "a.mp3", "Playing mp3 file. Name: a.mp3\n"},
		{"avi", "b.avi", "Playing avi file. Name: b.avi\n"},
		{"acc", "c.acc", "Playing acc file. Name: c.acc\n"},
		{"MP3", "d.mp3", "Playing MP3 file. Name: d.mp3\n"},
		{"vlc", "e.vlc", "Playing vlc file. Name: e.vlc\n"},
		{"VLC", "f.vlc", "Playing vlc file. Name: f.vlc\n"},
		{"Mp4", "g.mp4", "Playing mp4 file. Name: g.mp4\n"},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		require.NoError(t, adapter.NewAdaptor(&buf).Play(tc.mediaType, tc.file))
		assert.Equal(t, tc.want, buf.String(), tc.mediaType)
	}
}

func TestAdaptor_Unsupported(t *testing.T) {
	t.Parallel()

	for _, mediaType := range []string{"mov", "rmvb", "RMVB", ""} {
		var (
			buf     bytes.Buffer
			rec     recorder
			created int
		)
		a := adapter.NewAdaptor(&buf, adapter.WithPlayerSource(recordingSource(&rec, &created)))

		require.NoError(t, a.Play(mediaType, "x"))
		assert.Contains(t, buf.String(), "format not supported", mediaType)
		assert.Zero(t, created, "no backing player may be created for %q", mediaType)
		assert.Empty(t, rec.calls)
	}
}

func TestAdaptor_UnsupportedDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, adapter.NewAdaptor(&buf).Play("MOV", "loser.mov"))
	assert.Equal(t, "Invalid media. mov format not supported\n", buf.String())
}

func TestAdaptor_DispatchesToFamily(t *testing.T) {
	var (
		rec     recorder
		created int
	)
	a := adapter.NewAdaptor(io.Discard, adapter.WithPlayerSource(recordingSource(&rec, &created)))
	for _, track := range [][2]string{{"vlc", "1"}, {"mp4", "2"}, {"avi", "3"}} {
		require.NoError(t, a.Play(track[0], track[1]))
	}
	assert.Equal(t, []string{"vlc:1", "mp4:2", "audio:3"}, rec.calls)
	assert.Equal(t, 3, created)
}

func TestAdaptor_LogsUnsupported(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	a := adapter.NewAdaptor(io.Discard, adapter.WithLogger(zap.New(core)))

	require.NoError(t, a.Play("mp3", "ok.mp3"))
	require.NoError(t, a.Play("rmvb", "plane.rmvb"))

	entries := logs.FilterMessage("unsupported media format").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rmvb", entries[0].ContextMap()["mediaType"])
}

func TestSupports(t *testing.T) {
	for _, mt := range adapter.MediaTypes() {
		assert.True(t, adapter.Supports(mt), mt)
	}
	assert.True(t, adapter.Supports("AVI"))
	assert.False(t, adapter.Supports("mov"))
}

func TestPlayer_LazyAdaptor(t *testing.T) {
	var buf bytes.Buffer
	p := adapter.NewPlayer(&buf)
	require.NoError(t, p.Play("mp4", "alone.mp4"))
	require.NoError(t, p.Play("mp4", "again.mp4"))
	assert.Equal(t, "Playing mp4 file. Name: alone.mp4\nPlaying mp4 file. Name: again.mp4\n", buf.String())
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { adapter.WithLogger(nil) })
	assert.Panics(t, func() { adapter.WithPlayerSource(nil) })
}
