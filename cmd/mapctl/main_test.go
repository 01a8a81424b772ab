package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxvelasco/portuguese-map/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCollectionsCommand(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	out, err := run(t, "collections")
	require.NoError(t, err)

	rio := domain.Coordinates{Lon: -43.21043, Lat: -22.90947}.Key()
	assert.Contains(t, out, "Collection: Aline Motta (18 markers, 14 groups, 12 routes)")
	assert.Contains(t, out, "--- "+rio+" (3)")
}

func TestMarkersSeedListClear(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(dir, "app.db"))

	seed := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(seed, []byte(`[{"coordinates":[-9.1393,38.7223],"title":"Lisboa","description":"Tejo"}]`), 0o644))

	out, err := run(t, "markers", "seed", seed)
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 1 markers")

	out, err = run(t, "markers", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Lisboa\tTejo")

	_, err = run(t, "markers", "clear")
	require.NoError(t, err)

	out, err = run(t, "markers", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved markers.")
}

func TestExportToFile(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	path := filepath.Join(t.TempDir(), "map.geojson")

	out, err := run(t, "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "GeoJSON saved to "+path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var fc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal(b, &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.Features, 30)
}

func TestExportToS3RequiresSettings(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("S3_ENDPOINT", "")

	_, err := run(t, "export", "--s3")
	assert.Error(t, err)
}
