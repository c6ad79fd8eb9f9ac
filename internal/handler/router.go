package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mirelabs/zelda/backend/internal/avatar"
	"github.com/mirelabs/zelda/backend/internal/config"
	chathandler "github.com/mirelabs/zelda/backend/internal/handler/chat"
	modehandler "github.com/mirelabs/zelda/backend/internal/handler/mode"
	speechhandler "github.com/mirelabs/zelda/backend/internal/handler/speech"
	streamhandler "github.com/mirelabs/zelda/backend/internal/handler/stream"
	middlewarePkg "github.com/mirelabs/zelda/backend/internal/middleware"
	modemodel "github.com/mirelabs/zelda/backend/internal/model/mode"
	aiservice "github.com/mirelabs/zelda/backend/internal/service/ai"
	"github.com/mirelabs/zelda/backend/internal/service/companion"
	speechservice "github.com/mirelabs/zelda/backend/internal/service/speech"
	"github.com/mirelabs/zelda/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services and static media mounts.
func NewRouter(
	modes modemodel.Store,
	companionSvc *companion.Service,
	aiSvc *aiservice.Service,
	speechSvc *speechservice.Service,
	media config.MediaConfig,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		modehandler.New(modes).RegisterRoutes(api)
		chathandler.New(companionSvc).RegisterRoutes(api)

		if aiSvc != nil {
			streamhandler.New(aiSvc).RegisterRoutes(api)
		}
		if speechSvc != nil {
			speechhandler.New(speechSvc).RegisterRoutes(api)
		}

		api.Get("/avatar/clips", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, avatar.Clips())
		})

		api.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Synthesized clips and avatar reaction videos are plain static files.
	r.Handle("/audio/*", http.StripPrefix("/audio/", http.FileServer(http.Dir(media.AudioDir))))
	r.Handle("/video/*", http.StripPrefix("/video/", http.FileServer(http.Dir(media.VideoDir))))
	r.Handle("/*", http.FileServer(http.Dir(media.FrontendDir)))

	return r
}
