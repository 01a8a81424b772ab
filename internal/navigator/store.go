// Package navigator groups narrative entries by coordinate and drives the
// popup shown for each marker through its Closed/Open states.
//
// Nothing in this package is safe for concurrent use; callers serialise
// all events of one map session.
package navigator

import (
	"fmt"

	"github.com/maxvelasco/portuguese-map/internal/domain"
)

// PopupGroup holds every entry registered at one coordinate.
// Insertion order is the cycling order.
type PopupGroup struct {
	key     string
	entries []domain.NarrativeEntry
	cursor  int
}

func (g *PopupGroup) Key() string { return g.key }

func (g *PopupGroup) Len() int { return len(g.entries) }

// Cursor is the index shown on the next open, in [0, Len()).
func (g *PopupGroup) Cursor() int { return g.cursor }

// Entry returns a copy of the entry at i.
func (g *PopupGroup) Entry(i int) domain.NarrativeEntry { return g.entries[i].Clone() }

// Entries returns copies of all entries in cycling order.
func (g *PopupGroup) Entries() []domain.NarrativeEntry {
	out := make([]domain.NarrativeEntry, 0, len(g.entries))
	for _, e := range g.entries {
		out = append(out, e.Clone())
	}
	return out
}

// step moves the cursor with wrap-around in both directions.
func (g *PopupGroup) step(dir Direction) {
	n := len(g.entries)
	if n == 0 {
		return
	}
	g.cursor = (g.cursor + int(dir) + n) % n
}

// PopupGroupStore maps coordinate keys to groups.
// A store lives as long as one loaded map: build a fresh one on every
// (re)load and drop it on teardown.
type PopupGroupStore struct {
	groups map[string]*PopupGroup
	order  []string
}

func NewPopupGroupStore() *PopupGroupStore {
	return &PopupGroupStore{groups: make(map[string]*PopupGroup)}
}

// Register appends entry to the group at its coordinates, creating the
// group on first use. The cursor of an existing group is left untouched.
func (s *PopupGroupStore) Register(entry domain.NarrativeEntry) (string, error) {
	key, err := entry.Key()
	if err != nil {
		return "", fmt.Errorf("register entry %q: %w", entry.Title, err)
	}

	g, ok := s.groups[key]
	if !ok {
		g = &PopupGroup{key: key}
		s.groups[key] = g
		s.order = append(s.order, key)
	}
	g.entries = append(g.entries, entry.Clone())

	return key, nil
}

// Group returns the non-empty group stored under key.
func (s *PopupGroupStore) Group(key string) (*PopupGroup, bool) {
	g, ok := s.groups[key]
	if !ok || len(g.entries) == 0 {
		return nil, false
	}
	return g, true
}

// Keys returns group keys in creation order.
func (s *PopupGroupStore) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *PopupGroupStore) Len() int { return len(s.groups) }
