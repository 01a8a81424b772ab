package markers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxvelasco/portuguese-map/internal/adapters/storage"
	"github.com/maxvelasco/portuguese-map/internal/domain"
)

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, error) { return "", errors.New("disk gone") }
func (failingKV) Set(context.Context, string, string) error    { return errors.New("disk gone") }
func (failingKV) Delete(context.Context, string) error         { return errors.New("disk gone") }

// slowKV widens the gap between reading and writing the list.
type slowKV struct {
	*storage.MemoryKV
}

func (s slowKV) Get(ctx context.Context, key string) (string, error) {
	time.Sleep(time.Millisecond)
	return s.MemoryKV.Get(ctx, key)
}

var lisboa = domain.SavedMarker{
	Coordinates: domain.Coordinates{Lon: -9.13719, Lat: 38.70716},
	Title:       "Lisboa",
	Description: "Onde tudo começa",
}

func TestStoreAppendAndList(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := NewStore(kv, "")
	assert.Equal(t, DefaultKey, s.Key())

	assert.Empty(t, s.List(ctx))

	second := lisboa
	second.Title = "Porto"
	require.NoError(t, s.Append(ctx, lisboa))
	require.NoError(t, s.Append(ctx, second))

	got := s.List(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, lisboa, got[0])
	assert.Equal(t, "Porto", got[1].Title)

	raw, err := kv.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"coordinates":[-9.13719,38.70716],"title":"Lisboa","description":"Onde tudo começa"},
		  {"coordinates":[-9.13719,38.70716],"title":"Porto","description":"Onde tudo começa"}]`,
		raw)
}

func TestStoreCorruptValueIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, DefaultKey, "{not json"))
	s := NewStore(kv, DefaultKey)

	assert.Empty(t, s.List(ctx))

	require.NoError(t, s.Append(ctx, lisboa))
	assert.Len(t, s.List(ctx), 1, "append over a corrupt value starts a fresh list")
}

func TestStoreNullValueIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, DefaultKey, "null"))

	assert.Empty(t, NewStore(kv, DefaultKey).List(ctx))
}

func TestStoreReadFailureIsEmpty(t *testing.T) {
	s := NewStore(failingKV{}, DefaultKey)
	assert.Empty(t, s.List(context.Background()))
	assert.Error(t, s.Append(context.Background(), lisboa), "write errors are returned")
}

func TestStoreSkipsBadRecords(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, DefaultKey,
		`[{"coordinates":[500,0],"title":"x","description":"y"},{"coordinates":[-9.13719,38.70716],"title":"Lisboa","description":"Onde tudo começa"}]`))

	got := NewStore(kv, DefaultKey).List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, lisboa, got[0])
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := NewStore(kv, DefaultKey)
	require.NoError(t, s.Append(ctx, lisboa))

	require.NoError(t, s.Clear(ctx))

	assert.Empty(t, s.List(ctx))
	raw, _ := kv.Get(ctx, DefaultKey)
	assert.Equal(t, "[]", raw)
}

func TestAppendRequiresAllFields(t *testing.T) {
	s := NewStore(storage.NewMemoryKV(), DefaultKey)

	tests := []struct {
		name string
		mod  func(m *domain.SavedMarker)
	}{
		{"no title", func(m *domain.SavedMarker) { m.Title = " " }},
		{"no description", func(m *domain.SavedMarker) { m.Description = "" }},
		{"bad coordinates", func(m *domain.SavedMarker) { m.Coordinates.Lat = 91 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := lisboa
			tt.mod(&m)
			err := s.Append(context.Background(), m)
			assert.ErrorIs(t, err, ErrIncompleteMarker)
		})
	}
	assert.Empty(t, s.List(context.Background()))
}

func TestSeedFromJSON(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "markers.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`[{"coordinates":[-43.21043,-22.90947],"title":" Rio ","description":"A Cidade Maravilhosa"}]`), 0o644))

	s := NewStore(storage.NewMemoryKV(), DefaultKey)
	n, err := SeedFromJSON(ctx, s, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "Rio", s.List(ctx)[0].Title)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"coordinates":[1],"title":"a","description":"b"}]`), 0o644))
	_, err = SeedFromJSON(ctx, s, bad)
	assert.Error(t, err)
	assert.Len(t, s.List(ctx), 1, "a failed seed writes nothing")

	_, err = SeedFromJSON(ctx, s, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestStoreConcurrentAppendKeepsEveryMarker(t *testing.T) {
	ctx := context.Background()
	s := NewStore(slowKV{storage.NewMemoryKV()}, DefaultKey)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m := lisboa
			m.Title = fmt.Sprintf("marker %d", i)
			if err := s.Append(ctx, m); err != nil {
				t.Errorf("append %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	got := s.List(ctx)
	require.Len(t, got, n)

	seen := make(map[string]bool, n)
	for _, m := range got {
		seen[m.Title] = true
	}
	assert.Len(t, seen, n)
}

func TestStoreConcurrentSeedAndAppend(t *testing.T) {
	ctx := context.Background()
	s := NewStore(slowKV{storage.NewMemoryKV()}, DefaultKey)

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"coordinates":[-8.6291,41.1579],"title":"Porto","description":"Douro"}]`), 0o644))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if _, err := SeedFromJSON(ctx, s, path); err != nil {
			t.Errorf("seed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.Append(ctx, lisboa); err != nil {
			t.Errorf("append: %v", err)
		}
	}()
	wg.Wait()

	assert.Len(t, s.List(ctx), 2)
}
