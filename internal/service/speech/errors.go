package speech

import "errors"

// Client-side validation errors. Handlers map these to 400 responses;
// anything else from this package means the provider call itself failed.
var (
	ErrNotConfigured     = errors.New("speech provider credentials missing: set SPEECH_APP_ID and SPEECH_ACCESS_TOKEN")
	ErrEmptyText         = errors.New("synthesis text is empty")
	ErrEmptyAudio        = errors.New("audio payload is empty")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// supportedASRFormats lists the container formats the transcription
// endpoint accepts. Checked before dialing so bad uploads never reach the
// provider.
var supportedASRFormats = map[string]bool{
	"wav":  true,
	"mp3":  true,
	"ogg":  true,
	"webm": true,
	"m4a":  true,
	"pcm":  true,
}

// FormatSupported reports whether the transcription flow accepts the
// given audio container format.
func FormatSupported(format string) bool {
	return supportedASRFormats[format]
}
