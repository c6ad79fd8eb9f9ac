package speech

import (
	"context"
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	speechmodel "github.com/mirelabs/zelda/backend/internal/model/speech"
	speechservice "github.com/mirelabs/zelda/backend/internal/service/speech"
	"github.com/mirelabs/zelda/backend/pkg/utils"
)

// maxUploadBytes caps transcription uploads at 15MB.
const maxUploadBytes = 15 << 20

// Transcriber converts an uploaded clip into text.
type Transcriber interface {
	Enabled() bool
	TranscribeAudio(ctx context.Context, req *speechmodel.ASRRequest) (*speechmodel.ASRResponse, error)
}

// Handler serves the transcription endpoint.
type Handler struct {
	transcriber Transcriber
}

// New creates the speech handler.
func New(transcriber Transcriber) *Handler {
	return &Handler{transcriber: transcriber}
}

// RegisterRoutes mounts the speech routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/transcribe", h.handleTranscribe)
}

func (h *Handler) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if !h.transcriber.Enabled() {
		utils.RespondError(w, http.StatusServiceUnavailable, "transcription is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid multipart upload")
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "audio field is required")
		return
	}
	defer file.Close()

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	if format == "" {
		utils.RespondError(w, http.StatusBadRequest, "cannot determine audio format from filename")
		return
	}

	response, err := h.transcriber.TranscribeAudio(r.Context(), &speechmodel.ASRRequest{
		AudioData: file,
		Format:    format,
		Language:  strings.TrimSpace(r.FormValue("language")),
	})
	if err != nil {
		log.Printf("[transcribe] failed for %s: %v", header.Filename, err)
		switch {
		case errors.Is(err, speechservice.ErrUnsupportedFormat), errors.Is(err, speechservice.ErrEmptyAudio):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, speechservice.ErrNotConfigured):
			utils.RespondError(w, http.StatusServiceUnavailable, "transcription is not configured")
		default:
			utils.RespondError(w, http.StatusBadGateway, "transcription service is unavailable")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, response)
}
