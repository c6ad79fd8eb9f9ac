package speech

import "io"

// ASRRequest is a transcription request against the external provider.
type ASRRequest struct {
	SessionID string    `json:"sessionId"`
	AudioData io.Reader `json:"-"`
	Format    string    `json:"format"`   // mp3, wav, webm, ...
	Language  string    `json:"language"` // en-US, zh-CN, ...
}

// TTSRequest is a synthesis request against the external provider.
type TTSRequest struct {
	SessionID string  `json:"sessionId"`
	Text      string  `json:"text"`
	Voice     string  `json:"voice"`
	Speed     float32 `json:"speed"`  // playback rate multiplier
	Volume    float32 `json:"volume"` // 0.0-1.0
	Format    string  `json:"format"`
	Language  string  `json:"language"`
}
