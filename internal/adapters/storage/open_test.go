package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxvelasco/portuguese-map/internal/config"
)

func TestOpenByDriver(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"memory", config.Config{StorageDriver: config.DriverMemory}},
		{"sqlite", config.Config{StorageDriver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "app.db")}},
		{"redis", config.Config{StorageDriver: config.DriverRedis, RedisAddr: mr.Addr()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, closeFn, err := Open(context.Background(), tt.cfg)
			require.NoError(t, err)
			t.Cleanup(func() { _ = closeFn() })

			exerciseStore(t, kv)
		})
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), config.Config{StorageDriver: "etcd"})
	assert.Error(t, err)
}
