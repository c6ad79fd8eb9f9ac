package mode

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	modemodel "github.com/mirelabs/zelda/backend/internal/model/mode"
	"github.com/mirelabs/zelda/backend/pkg/utils"
)

// Handler serves the personality mode catalog.
type Handler struct {
	store modemodel.Store
}

// New creates the mode handler.
func New(store modemodel.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the mode routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/modes", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.List())
}
