package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxvelasco/portuguese-map/internal/platform/db"
	"github.com/maxvelasco/portuguese-map/internal/ports"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s ports.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "markers")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "markers", `[]`))
	v, err := s.Get(ctx, "markers")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)

	require.NoError(t, s.Set(ctx, "markers", `[{"title":"Lisboa"}]`))
	v, err = s.Get(ctx, "markers")
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"Lisboa"}]`, v)

	require.NoError(t, s.Delete(ctx, "markers"))
	_, err = s.Get(ctx, "markers")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)

	assert.NoError(t, s.Delete(ctx, "never-set"))
}

func TestMemoryKV(t *testing.T) {
	exerciseStore(t, NewMemoryKV())
}

func TestSqliteKV(t *testing.T) {
	sqlDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, InitSchema(context.Background(), sqlDB))
	require.NoError(t, InitSchema(context.Background(), sqlDB), "schema init is idempotent")

	exerciseStore(t, NewSqliteKV(sqlDB))
}

func TestSqliteKVRejectsEmptyKey(t *testing.T) {
	sqlDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, InitSchema(context.Background(), sqlDB))

	assert.Error(t, NewSqliteKV(sqlDB).Set(context.Background(), "  ", "x"))
}

func TestNilDBErrors(t *testing.T) {
	ctx := context.Background()
	for _, s := range []ports.KeyValueStore{NewSqliteKV(nil), NewSQLKV(nil)} {
		_, err := s.Get(ctx, "k")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ports.ErrKeyNotFound)
		assert.Error(t, s.Set(ctx, "k", "v"))
		assert.Error(t, s.Delete(ctx, "k"))
	}
	assert.Error(t, InitSchema(ctx, nil))
}

func TestRedisKV(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisKV(client, "pmap:")
	exerciseStore(t, s)

	require.NoError(t, s.Set(context.Background(), "markers", "[]"))
	got, err := mr.Get("pmap:markers")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()

	client, err := OpenRedis(context.Background(), addr)
	require.NoError(t, err)
	_ = client.Close()

	// A stopped server no longer reports its address, so reuse the one
	// captured above.
	mr.Close()
	_, err = OpenRedis(context.Background(), addr)
	assert.Error(t, err)
}
