package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "data/app.db", cfg.DBPath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "markers", cfg.StorageKey)
	assert.Equal(t, "data/seeds/markers.json", cfg.SeedPath)
	assert.True(t, cfg.ClearOnLoad)
	assert.Equal(t, "mapbox://styles/mapbox/streets-v11", cfg.MapStyle)
	assert.Equal(t, 3.5, cfg.MapZoom)
	assert.Equal(t, "pt", cfg.MapLanguage)
	assert.Equal(t, 50*time.Millisecond, cfg.AnimationFrame)
	assert.Equal(t, "portuguese-map", cfg.S3.Bucket)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("ANIMATION_FRAME_MS", "20")
	t.Setenv("MARKERS_CLEAR_ON_LOAD", "false")
	t.Setenv("S3_USE_SSL", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverRedis, cfg.StorageDriver)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 20*time.Millisecond, cfg.AnimationFrame)
	assert.False(t, cfg.ClearOnLoad)
	assert.True(t, cfg.S3.UseSSL)
}

func TestLoad_PostgresNeedsURL(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("STORAGE_DRIVER", "floppy")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}

func TestLoad_BadFrame(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("ANIMATION_FRAME_MS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	t.Setenv("PMAP_TEST_KEY", "value")
	assert.Equal(t, "value", Get("PMAP_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", Get("PMAP_TEST_UNSET", "fallback"))
}
