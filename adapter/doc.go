// Package adapter implements the Adapter pattern: a uniform MediaPlayer
// interface is served by AdvancedMediaPlayer implementations that each
// understand a single family of formats.
//
// Play dispatches on a case-insensitive media-type tag:
//
//	vlc            → VlcPlayer.PlayVlc
//	mp4            → Mp4Player.PlayMp4
//	mp3, avi, acc  → AudioPlayer.PlayAudio
//	anything else  → "Invalid media. <type> format not supported"
//
// An unsupported tag is not an error: the diagnostic line is written, no
// backing player is created and Play returns nil. Errors returned by Play
// come from the output writer only.
package adapter
