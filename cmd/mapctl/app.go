package main

import (
	"context"
	"fmt"

	"github.com/maxvelasco/portuguese-map/internal/adapters/storage"
	"github.com/maxvelasco/portuguese-map/internal/config"
	"github.com/maxvelasco/portuguese-map/internal/markers"
	"github.com/maxvelasco/portuguese-map/internal/platform/logging"
)

// app holds what subcommands share: the loaded config and, once opened,
// the saved marker store.
type app struct {
	verbose bool

	cfg        config.Config
	saved      *markers.Store
	closeStore func() error
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if a.verbose {
		level = "debug"
	}
	logging.Setup(level, true)
	a.cfg = cfg
	return nil
}

// store opens the configured store on first use.
func (a *app) store(ctx context.Context) (*markers.Store, error) {
	if a.saved != nil {
		return a.saved, nil
	}
	kv, closeFn, err := storage.Open(ctx, a.cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", a.cfg.StorageDriver, err)
	}
	a.saved = markers.NewStore(kv, a.cfg.StorageKey)
	a.closeStore = closeFn
	return a.saved, nil
}

func (a *app) close() error {
	if a.closeStore == nil {
		return nil
	}
	err := a.closeStore()
	a.closeStore = nil
	a.saved = nil
	return err
}
