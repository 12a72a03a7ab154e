package adapter

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format is the backing-player family a media type belongs to.
type Format string

const (
	// FormatVlc is served by VlcPlayer.
	FormatVlc Format = "vlc"
	// FormatMp4 is served by Mp4Player.
	FormatMp4 Format = "mp4"
	// FormatAudio is served by AudioPlayer.
	FormatAudio Format = "audio"
)

// mediaFormats maps lowered media-type tags to their family.
var mediaFormats = map[string]Format{
	"vlc": FormatVlc,
	"mp4": FormatMp4,
	"mp3": FormatAudio,
	"avi": FormatAudio,
	"acc": FormatAudio,
}

// MediaTypes lists the supported tags in display order.
func MediaTypes() []string {
	return []string{"vlc", "mp4", "mp3", "avi", "acc"}
}

// lower folds tag to lower case. A Caser keeps state, so one is built per call.
func lower(tag string) string {
	return cases.Lower(language.Und).String(tag)
}

// formatOf reports the family of an already lowered tag.
func formatOf(lowered string) (Format, bool) {
	f, ok := mediaFormats[lowered]

	return f, ok
}

// Supports reports whether mediaType (any case) can be played.
func Supports(mediaType string) bool {
	_, ok := formatOf(lower(mediaType))

	return ok
}
