package storage

import (
	"context"
	"fmt"

	"github.com/maxvelasco/portuguese-map/internal/config"
	"github.com/maxvelasco/portuguese-map/internal/platform/db"
	"github.com/maxvelasco/portuguese-map/internal/ports"
)

// Open builds the store selected by cfg.StorageDriver. SQL backends get
// their schema created. The returned close func releases the connection.
func Open(ctx context.Context, cfg config.Config) (ports.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case config.DriverMemory:
		return NewMemoryKV(), noop, nil

	case config.DriverRedis:
		client, err := OpenRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, fmt.Errorf("open storage: %w", err)
		}
		return NewRedisKV(client, ""), client.Close, nil

	case config.DriverSQLite:
		conn, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open storage: %w", err)
		}
		if err := InitSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("open storage: %w", err)
		}
		return NewSqliteKV(conn), conn.Close, nil

	case config.DriverPostgres:
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open storage: %w", err)
		}
		if err := InitSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("open storage: %w", err)
		}
		return NewSQLKV(conn), conn.Close, nil
	}

	return nil, nil, fmt.Errorf("open storage: unknown driver %q", cfg.StorageDriver)
}
