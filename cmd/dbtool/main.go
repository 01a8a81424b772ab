package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/maxvelasco/portuguese-map/internal/adapters/storage"
	"github.com/maxvelasco/portuguese-map/internal/config"
	"github.com/maxvelasco/portuguese-map/internal/markers"
	"github.com/maxvelasco/portuguese-map/internal/platform/logging"
)

// dbtool prepares the configured store: it creates the schema and seeds
// the saved marker list from SEED_PATH.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)

	ctx := context.Background()

	log.Info().Str("driver", cfg.StorageDriver).Msg("initializing storage")
	kv, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("storage initialization failed")
	}
	defer closeStore()
	log.Info().Msg("storage ready")

	seedPath := config.Get("SEED_PATH", cfg.SeedPath)
	log.Info().Str("path", seedPath).Msg("seeding saved markers")
	n, err := markers.SeedFromJSON(ctx, markers.NewStore(kv, cfg.StorageKey), seedPath)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Int("markers", n).Msg("seeding complete")
}
