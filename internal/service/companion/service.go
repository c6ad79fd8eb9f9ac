package companion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/mirelabs/zelda/backend/internal/analysis/tone"
	"github.com/mirelabs/zelda/backend/internal/avatar"
	"github.com/mirelabs/zelda/backend/internal/model/chat"
	speechmodel "github.com/mirelabs/zelda/backend/internal/model/speech"
)

// Sentinel failure classes so the HTTP layer can pick a status code
// without inspecting provider error strings.
var (
	ErrUpstream = errors.New("upstream service failure")
	ErrStorage  = errors.New("audio storage failure")
)

// ReplyGenerator produces the raw assistant reply text.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, modeID string, history []chat.Turn, message string) (string, error)
}

// Synthesizer converts shaped text into audio bytes.
type Synthesizer interface {
	Enabled() bool
	SynthesizeSpeech(ctx context.Context, req *speechmodel.TTSRequest) (*speechmodel.TTSResponse, error)
}

// ClipStore persists synthesized audio and returns its public URL.
type ClipStore interface {
	Save(data []byte, format string) (string, error)
}

// Service runs one chat turn end to end: reply generation, tone
// detection, prosody shaping, synthesis, and avatar clip selection.
type Service struct {
	ai    ReplyGenerator
	synth Synthesizer
	clips ClipStore
}

// NewService wires the orchestrator.
func NewService(ai ReplyGenerator, synth Synthesizer, clips ClipStore) *Service {
	return &Service{ai: ai, synth: synth, clips: clips}
}

// Respond handles one user message and returns the full companion turn.
// The UI always receives the raw model reply; prosody shaping applies only
// to the text fed into synthesis. Audio is written only after synthesis
// succeeds, so a failed turn never leaves a clip behind.
func (s *Service) Respond(ctx context.Context, req *chat.Request) (*chat.Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("message is empty")
	}

	reply, err := s.ai.GenerateReply(ctx, req.Mode, req.History, message)
	if err != nil {
		return nil, fmt.Errorf("%w: reply generation: %v", ErrUpstream, err)
	}
	if strings.TrimSpace(reply) == "" {
		return nil, fmt.Errorf("%w: reply generation returned empty text", ErrUpstream)
	}

	label := tone.Detect(reply)

	response := &chat.Response{
		Reply: reply,
		Tone:  string(label),
		Clip:  avatar.ClipFor(string(label)),
	}

	if s.synth == nil || !s.synth.Enabled() {
		log.Printf("[companion] speech disabled, returning text-only turn, tone=%s", label)
		return response, nil
	}

	ttsResp, err := s.synth.SynthesizeSpeech(ctx, &speechmodel.TTSRequest{Text: tone.Shape(reply, label)})
	if err != nil {
		return nil, fmt.Errorf("%w: speech synthesis: %v", ErrUpstream, err)
	}

	audioURL, err := s.clips.Save(ttsResp.AudioData, ttsResp.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	response.AudioURL = audioURL
	log.Printf("[companion] turn complete, tone=%s, audio=%s", label, audioURL)
	return response, nil
}
