package stream

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/cloudwego/eino/schema"
	"github.com/go-chi/chi/v5"

	"github.com/mirelabs/zelda/backend/internal/analysis/tone"
	"github.com/mirelabs/zelda/backend/internal/avatar"
	chatmodel "github.com/mirelabs/zelda/backend/internal/model/chat"
	"github.com/mirelabs/zelda/backend/pkg/utils"
)

// Streamer produces reply deltas from the chat model.
type Streamer interface {
	StreamingEnabled() bool
	StreamReply(ctx context.Context, modeID string, history []chatmodel.Turn, message string) (*schema.StreamReader[*schema.Message], error)
}

// Handler serves the SSE chat stream. Deltas arrive as raw model text;
// the shaped reply, tone, and avatar clip follow in the final message
// event once the full text is known.
type Handler struct {
	ai Streamer
}

// New creates the stream handler.
func New(ai Streamer) *Handler {
	return &Handler{ai: ai}
}

// RegisterRoutes mounts the stream routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/stream", h.handleStream)
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	if !h.ai.StreamingEnabled() {
		utils.RespondError(w, http.StatusServiceUnavailable, "streaming is disabled")
		return
	}

	message := r.URL.Query().Get("message")
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
		return
	}
	modeID := r.URL.Query().Get("mode")

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	reader, err := h.ai.StreamReply(r.Context(), modeID, nil, message)
	if err != nil {
		log.Printf("[stream] failed to open reply stream: %v", err)
		utils.RespondError(w, http.StatusBadGateway, "companion services are unavailable")
		return
	}
	defer reader.Close()

	utils.SetupSSEHeaders(w)

	var chunks []*schema.Message
	for {
		chunk, err := reader.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Printf("[stream] recv failed: %v", err)
			utils.SendSSEChunk(w, flusher, map[string]any{
				"event":   "error",
				"message": "reply stream interrupted",
			})
			return
		}

		chunks = append(chunks, chunk)
		if chunk.Content != "" {
			utils.SendSSEChunk(w, flusher, map[string]any{
				"event": "delta",
				"text":  chunk.Content,
			})
		}
	}

	full, err := schema.ConcatMessages(chunks)
	if err != nil {
		log.Printf("[stream] failed to concat reply chunks: %v", err)
		utils.SendSSEChunk(w, flusher, map[string]any{
			"event":   "error",
			"message": "reply assembly failed",
		})
		return
	}

	// The final event carries the raw reply; shaping is only ever applied
	// to text headed for synthesis.
	label := tone.Detect(full.Content)
	utils.SendSSEChunk(w, flusher, map[string]any{
		"event": "message",
		"reply": full.Content,
		"tone":  string(label),
		"clip":  avatar.ClipFor(string(label)),
	})
	utils.SendSSEChunk(w, flusher, map[string]any{"event": "end"})
}
