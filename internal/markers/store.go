// Package markers persists user-created markers as one JSON array under a
// single key of a key-value store.
package markers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/maxvelasco/portuguese-map/internal/domain"
	"github.com/maxvelasco/portuguese-map/internal/ports"
)

// DefaultKey is the storage key of the saved marker list.
const DefaultKey = "markers"

// ErrIncompleteMarker is returned when a marker lacks a title, a
// description or valid coordinates.
var ErrIncompleteMarker = errors.New("marker needs title, description and coordinates")

// Record is the stored form of a saved marker.
type Record struct {
	Coordinates []float64 `json:"coordinates"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

func recordFrom(m domain.SavedMarker) Record {
	return Record{
		Coordinates: m.Coordinates.CoordsToList(),
		Title:       m.Title,
		Description: m.Description,
	}
}

func (r Record) marker() (domain.SavedMarker, error) {
	c, err := domain.CoordinatesFromList(r.Coordinates)
	if err != nil {
		return domain.SavedMarker{}, err
	}
	return domain.SavedMarker{Coordinates: c, Title: r.Title, Description: r.Description}, nil
}

// Validate checks that every field of a saved marker is present.
func Validate(m domain.SavedMarker) error {
	if strings.TrimSpace(m.Title) == "" || strings.TrimSpace(m.Description) == "" {
		return ErrIncompleteMarker
	}
	if err := m.Coordinates.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrIncompleteMarker, err)
	}
	return nil
}

// Store reads and writes the saved marker list. Every read-modify-write
// runs under mu, so one Store may be shared by all sessions.
type Store struct {
	kv  ports.KeyValueStore
	key string

	mu sync.Mutex
}

func NewStore(kv ports.KeyValueStore, key string) *Store {
	if strings.TrimSpace(key) == "" {
		key = DefaultKey
	}
	return &Store{kv: kv, key: key}
}

func (s *Store) Key() string { return s.key }

// List returns the saved markers in insertion order. A missing, unreadable
// or corrupt value yields an empty list; the failure is only logged.
// Records with unusable coordinates are skipped.
func (s *Store) List(ctx context.Context) []domain.SavedMarker {
	records := s.read(ctx)

	out := make([]domain.SavedMarker, 0, len(records))
	for i, r := range records {
		m, err := r.marker()
		if err != nil {
			log.Warn().Err(err).Int("index", i).Str("title", r.Title).Msg("skip saved marker")
			continue
		}
		out = append(out, m)
	}
	return out
}

// Append adds m at the end of the list.
func (s *Store) Append(ctx context.Context, m domain.SavedMarker) error {
	if err := Validate(m); err != nil {
		return fmt.Errorf("append marker: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := append(s.read(ctx), recordFrom(m))
	return s.write(ctx, records)
}

// Clear replaces the list with an empty one.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, []Record{})
}

func (s *Store) read(ctx context.Context) []Record {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return []Record{}
	}
	if err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("read saved markers failed, using empty list")
		return []Record{}
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("saved markers corrupt, using empty list")
		return []Record{}
	}
	if records == nil {
		records = []Record{}
	}
	return records
}

func (s *Store) write(ctx context.Context, records []Record) error {
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("write markers: encode: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(b)); err != nil {
		return fmt.Errorf("write markers: %w", err)
	}
	return nil
}

// SeedFromJSON appends the markers listed in a JSON file to the store.
func SeedFromJSON(ctx context.Context, s *Store, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed markers: read %q: %w", jsonPath, err)
	}

	var data []Record
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed markers: parse json: %w", err)
	}

	seeds := make([]domain.SavedMarker, 0, len(data))
	for i, item := range data {
		m, err := item.marker()
		if err != nil {
			return 0, fmt.Errorf("seed markers: item at index %d: %w", i+1, err)
		}
		m.Title = strings.TrimSpace(m.Title)
		m.Description = strings.TrimSpace(m.Description)
		if err := Validate(m); err != nil {
			return 0, fmt.Errorf("seed markers: item at index %d: %w", i+1, err)
		}
		seeds = append(seeds, m)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.read(ctx)
	for _, m := range seeds {
		records = append(records, recordFrom(m))
	}
	if err := s.write(ctx, records); err != nil {
		return 0, fmt.Errorf("seed markers: %w", err)
	}

	return len(seeds), nil
}
