// Package surface implements ports.MapSurface without a browser.
//
// A Headless surface records markers, popups, sources, layers and paint
// properties, and dispatches the events a browser client forwards to it.
// Snapshot exposes the whole state for the client to draw with its map
// library. After Remove every mutating call is ignored.
package surface

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/maxvelasco/portuguese-map/internal/domain"
	"github.com/maxvelasco/portuguese-map/internal/ports"
)

// Headless is safe for concurrent use: the animator goroutine writes paint
// properties while request handlers dispatch events.
type Headless struct {
	mu       sync.Mutex
	removed  bool
	markers  map[string]*Marker
	order    []string
	sources  map[string][][]float64
	layers   map[string]*ports.LineLayer
	layerSeq []string
	handlers map[string][]func(ports.LayerEvent)
	popup    *StandalonePopup
	cursor   string
}

func NewHeadless() *Headless {
	return &Headless{
		markers:  make(map[string]*Marker),
		sources:  make(map[string][][]float64),
		layers:   make(map[string]*ports.LineLayer),
		handlers: make(map[string][]func(ports.LayerEvent)),
	}
}

var _ ports.MapSurface = (*Headless)(nil)

func (s *Headless) AddMarker(coords domain.Coordinates, element ports.MarkerElement) ports.MarkerHandle {
	m := &Marker{
		surface: s,
		id:      uuid.NewString(),
		coords:  coords,
		element: element,
	}
	m.popup = &Popup{marker: m}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.removed {
		s.markers[m.id] = m
		s.order = append(s.order, m.id)
	}
	return m
}

// Marker returns a marker by id.
func (s *Headless) Marker(id string) (*Marker, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.markers[id]
	return m, ok
}

func (s *Headless) AddLineSource(id string, path [][]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return nil
	}
	if _, ok := s.sources[id]; ok {
		return fmt.Errorf("add source: source %q already exists", id)
	}
	s.sources[id] = slices.Clone(path)
	return nil
}

func (s *Headless) AddLayer(layer ports.LineLayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return nil
	}
	if _, ok := s.layers[layer.ID]; ok {
		return fmt.Errorf("add layer: layer %q already exists", layer.ID)
	}
	if _, ok := s.sources[layer.Source]; !ok {
		return fmt.Errorf("add layer %q: unknown source %q", layer.ID, layer.Source)
	}
	l := layer
	l.Layout = maps.Clone(layer.Layout)
	l.Paint = maps.Clone(layer.Paint)
	if l.Paint == nil {
		l.Paint = map[string]any{}
	}
	s.layers[l.ID] = &l
	s.layerSeq = append(s.layerSeq, l.ID)
	return nil
}

func (s *Headless) SetPaintProperty(layerID, property string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return nil
	}
	l, ok := s.layers[layerID]
	if !ok {
		return fmt.Errorf("set paint property: unknown layer %q", layerID)
	}
	l.Paint[property] = value
	return nil
}

// PaintProperty reads back a paint property.
func (s *Headless) PaintProperty(layerID, property string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.layers[layerID]
	if !ok {
		return nil, false
	}
	v, ok := l.Paint[property]
	return v, ok
}

func (s *Headless) On(event, layerID string, handler func(ports.LayerEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return
	}
	k := event + "|" + layerID
	s.handlers[k] = append(s.handlers[k], handler)
}

// Fire dispatches a layer event. It reports whether any handler ran.
// Handlers run without the surface lock held.
func (s *Headless) Fire(event, layerID string, at domain.Coordinates) bool {
	s.mu.Lock()
	if s.removed {
		s.mu.Unlock()
		return false
	}
	hs := slices.Clone(s.handlers[event+"|"+layerID])
	s.mu.Unlock()

	for _, h := range hs {
		h(ports.LayerEvent{LayerID: layerID, At: at})
	}
	return len(hs) > 0
}

func (s *Headless) ShowPopup(at domain.Coordinates, html string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return
	}
	s.popup = &StandalonePopup{At: at, HTML: html}
}

// CloseStandalonePopup hides the popup opened by ShowPopup.
func (s *Headless) CloseStandalonePopup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popup = nil
}

func (s *Headless) SetCursor(cursor string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return
	}
	s.cursor = cursor
}

func (s *Headless) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.removed
}

// Remove tears the surface down. Markers, layers and handlers are dropped.
func (s *Headless) Remove() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = true
	s.markers = map[string]*Marker{}
	s.order = nil
	s.sources = map[string][][]float64{}
	s.layers = map[string]*ports.LineLayer{}
	s.layerSeq = nil
	s.handlers = map[string][]func(ports.LayerEvent){}
	s.popup = nil
	s.cursor = ""
}

// StandalonePopup is a popup not attached to a marker (route popups).
type StandalonePopup struct {
	At   domain.Coordinates
	HTML string
}
