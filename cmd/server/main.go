package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/maxvelasco/portuguese-map/internal/adapters/storage"
	"github.com/maxvelasco/portuguese-map/internal/api"
	"github.com/maxvelasco/portuguese-map/internal/catalog"
	"github.com/maxvelasco/portuguese-map/internal/config"
	"github.com/maxvelasco/portuguese-map/internal/markers"
	"github.com/maxvelasco/portuguese-map/internal/platform/graceful"
	"github.com/maxvelasco/portuguese-map/internal/platform/logging"
	"github.com/maxvelasco/portuguese-map/internal/services"
)

// main is the application composition root.
// It wires the configured key-value store behind the saved marker list and
// starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := graceful.Context(context.Background())
	defer stop()

	kv, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("open storage")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("close storage")
		}
	}()

	view := catalog.DefaultView()
	view.Style = cfg.MapStyle
	view.Zoom = cfg.MapZoom
	view.Language = cfg.MapLanguage

	saved := markers.NewStore(kv, cfg.StorageKey)
	mgr := services.NewManager(saved, services.ManagerOptions{
		Frame:       cfg.AnimationFrame,
		ClearOnLoad: cfg.ClearOnLoad,
		View:        view,
	})

	if cfg.MapboxToken == "" {
		log.Warn().Msg("MAPBOX_TOKEN is empty; clients will need their own token")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(mgr, cfg.MapboxToken),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("storage", cfg.StorageDriver).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("server shutdown")
	}

	mgr.TeardownAll()
	log.Info().Msg("server stopped")
}
