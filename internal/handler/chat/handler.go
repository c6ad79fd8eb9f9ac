package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/mirelabs/zelda/backend/internal/model/chat"
	"github.com/mirelabs/zelda/backend/internal/service/companion"
	"github.com/mirelabs/zelda/backend/pkg/utils"
)

// Responder runs one full companion turn.
type Responder interface {
	Respond(ctx context.Context, req *chatmodel.Request) (*chatmodel.Response, error)
}

// Handler serves the chat endpoint.
type Handler struct {
	companion Responder
}

// New creates the chat handler.
func New(companion Responder) *Handler {
	return &Handler{companion: companion}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatmodel.Request
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	for _, turn := range payload.History {
		if !chatmodel.ValidRole(turn.Role) {
			utils.RespondError(w, http.StatusBadRequest, "history roles must be user or assistant")
			return
		}
	}

	response, err := h.companion.Respond(r.Context(), &payload)
	if err != nil {
		log.Printf("[chat] turn failed: %v", err)
		switch {
		case errors.Is(err, companion.ErrUpstream):
			utils.RespondError(w, http.StatusBadGateway, "companion services are unavailable")
		case errors.Is(err, companion.ErrStorage):
			utils.RespondError(w, http.StatusInternalServerError, "failed to store synthesized audio")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "chat turn failed")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, response)
}
