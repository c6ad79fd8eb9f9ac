package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/mirelabs/zelda/backend/internal/config"
	speechmodel "github.com/mirelabs/zelda/backend/internal/model/speech"
)

// Service fronts the external speech provider with request validation and
// per-call timeouts. Both directions (synthesis and transcription) share
// one credential pair.
type Service struct {
	cfg config.SpeechConfig
	tts *ttsClient
	asr *asrClient
}

// NewService builds the provider clients from configuration.
func NewService(cfg config.SpeechConfig) *Service {
	return &Service{
		cfg: cfg,
		tts: newTTSClient(cfg),
		asr: newASRClient(cfg),
	}
}

// Enabled reports whether provider credentials are configured.
func (s *Service) Enabled() bool {
	return s.cfg.Enabled
}

// SynthesizeSpeech converts shaped reply text into audio bytes.
func (s *Service) SynthesizeSpeech(ctx context.Context, req *speechmodel.TTSRequest) (*speechmodel.TTSResponse, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}
	if strings.TrimSpace(req.SessionID) == "" {
		req.SessionID = uuid.New().String()
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	resp, err := s.tts.Synthesize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	log.Printf("[speech] synthesized %d bytes, session=%s", len(resp.AudioData), resp.SessionID)
	return resp, nil
}

// TranscribeAudio converts an uploaded clip into text. Format validation
// happens here so callers can distinguish bad uploads from provider
// failures.
func (s *Service) TranscribeAudio(ctx context.Context, req *speechmodel.ASRRequest) (*speechmodel.ASRResponse, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}
	if req.AudioData == nil {
		return nil, ErrEmptyAudio
	}

	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = "wav"
	}
	if !FormatSupported(format) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	req.Format = format

	audioData, err := io.ReadAll(req.AudioData)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio payload: %w", err)
	}
	if len(audioData) == 0 {
		return nil, ErrEmptyAudio
	}
	if !matchesFormat(audioData, format) {
		return nil, fmt.Errorf("%w: payload does not look like %s audio", ErrUnsupportedFormat, format)
	}
	req.AudioData = bytes.NewReader(audioData)

	if strings.TrimSpace(req.SessionID) == "" {
		req.SessionID = uuid.New().String()
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	resp, err := s.asr.Transcribe(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("speech transcription failed: %w", err)
	}

	log.Printf("[speech] transcribed %d chars, session=%s", len(resp.Text), resp.SessionID)
	return resp, nil
}
