package adapter

import (
	"fmt"
	"io"
)

// AdvancedMediaPlayer is the incompatible interface being adapted. A
// concrete player implements one method and ignores the other two.
type AdvancedMediaPlayer interface {
	PlayAudio(fileName string) error
	PlayVlc(fileName string) error
	PlayMp4(fileName string) error
}

// AudioPlayer plays the audio family (mp3, avi, acc).
type AudioPlayer struct {
	w         io.Writer
	mediaType string
}

// NewAudioPlayer returns an AudioPlayer that reports mediaType verbatim.
func NewAudioPlayer(w io.Writer, mediaType string) *AudioPlayer {
	return &AudioPlayer{w: w, mediaType: mediaType}
}

// PlayAudio writes "Playing <mediaType> file. Name: <fileName>".
func (p *AudioPlayer) PlayAudio(fileName string) error {
	return playing(p.w, p.mediaType, fileName)
}

// PlayVlc does nothing.
func (*AudioPlayer) PlayVlc(string) error { return nil }

// PlayMp4 does nothing.
func (*AudioPlayer) PlayMp4(string) error { return nil }

// VlcPlayer plays vlc files.
type VlcPlayer struct {
	w io.Writer
}

// NewVlcPlayer returns a VlcPlayer writing to w.
func NewVlcPlayer(w io.Writer) *VlcPlayer {
	return &VlcPlayer{w: w}
}

// PlayAudio does nothing.
func (*VlcPlayer) PlayAudio(string) error { return nil }

// PlayVlc writes "Playing vlc file. Name: <fileName>".
func (p *VlcPlayer) PlayVlc(fileName string) error {
	return playing(p.w, string(FormatVlc), fileName)
}

// PlayMp4 does nothing.
func (*VlcPlayer) PlayMp4(string) error { return nil }

// Mp4Player plays mp4 files.
type Mp4Player struct {
	w io.Writer
}

// NewMp4Player returns an Mp4Player writing to w.
func NewMp4Player(w io.Writer) *Mp4Player {
	return &Mp4Player{w: w}
}

// PlayAudio does nothing.
func (*Mp4Player) PlayAudio(string) error { return nil }

// PlayVlc does nothing.
func (*Mp4Player) PlayVlc(string) error { return nil }

// PlayMp4 writes "Playing mp4 file. Name: <fileName>".
func (p *Mp4Player) PlayMp4(fileName string) error {
	return playing(p.w, string(FormatMp4), fileName)
}

func playing(w io.Writer, mediaType, fileName string) error {
	_, err := fmt.Fprintf(w, "Playing %s file. Name: %s\n", mediaType, fileName)

	return err
}

var (
	_ AdvancedMediaPlayer = (*AudioPlayer)(nil)
	_ AdvancedMediaPlayer = (*VlcPlayer)(nil)
	_ AdvancedMediaPlayer = (*Mp4Player)(nil)
)
