package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mirelabs/zelda/backend/internal/config"
	"github.com/mirelabs/zelda/backend/internal/handler"
	"github.com/mirelabs/zelda/backend/internal/model/mode"
	"github.com/mirelabs/zelda/backend/internal/service/ai"
	"github.com/mirelabs/zelda/backend/internal/service/audio"
	"github.com/mirelabs/zelda/backend/internal/service/companion"
	"github.com/mirelabs/zelda/backend/internal/service/speech"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	modeStore := mode.NewMemoryStore(mode.Seed())

	if !cfg.AI.Enabled() {
		log.Fatal("chat model credentials missing: set ARK_API_KEY (or the key file) plus ARK_MODEL")
	}
	aiService, err := ai.NewService(ctx, modeStore, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize AI service: %v", err)
	}
	log.Println("AI service initialized successfully")

	var speechService *speech.Service
	if cfg.Speech.Enabled {
		speechService = speech.NewService(cfg.Speech)
		log.Println("Speech service initialized successfully")
	} else {
		log.Println("speech credentials not configured, replies will be text-only")
	}

	audioStore, err := audio.NewStore(cfg.Media.AudioDir, cfg.Media.AudioTTL)
	if err != nil {
		log.Fatalf("failed to initialize audio store: %v", err)
	}
	audioStore.StartSweeper(ctx)

	var synth companion.Synthesizer
	if speechService != nil {
		synth = speechService
	}
	companionService := companion.NewService(aiService, synth, audioStore)

	router := handler.NewRouter(modeStore, companionService, aiService, speechService, cfg.Media)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Zelda companion backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
