package surface

import (
	"maps"
	"slices"
)

// MarkerState is the serialisable state of one marker.
type MarkerState struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Coords    []float64 `json:"coordinates"`
	ClassName string    `json:"class_name"`
	PopupOpen bool      `json:"popup_open"`
	PopupHTML string    `json:"popup_html,omitempty"`
}

// LayerState is the serialisable state of one line layer.
type LayerState struct {
	ID     string         `json:"id"`
	Source string         `json:"source"`
	Layout map[string]any `json:"layout,omitempty"`
	Paint  map[string]any `json:"paint"`
}

// PopupState is a standalone popup.
type PopupState struct {
	Coordinates []float64 `json:"coordinates"`
	HTML        string    `json:"html"`
}

// Snapshot is everything a client needs to draw the surface.
type Snapshot struct {
	Alive   bool                   `json:"alive"`
	Markers []MarkerState          `json:"markers"`
	Sources map[string][][]float64 `json:"sources"`
	Layers  []LayerState           `json:"layers"`
	Popup   *PopupState            `json:"popup,omitempty"`
	Cursor  string                 `json:"cursor"`
}

// Snapshot copies the current state in insertion order.
func (s *Headless) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Snapshot{
		Alive:   !s.removed,
		Markers: make([]MarkerState, 0, len(s.order)),
		Sources: make(map[string][][]float64, len(s.sources)),
		Layers:  make([]LayerState, 0, len(s.layerSeq)),
		Cursor:  s.cursor,
	}

	for _, id := range s.order {
		m := s.markers[id]
		ms := MarkerState{
			ID:        m.id,
			Key:       m.coords.Key(),
			Coords:    m.coords.CoordsToList(),
			ClassName: m.element.ClassName,
			PopupOpen: m.popup.isOpen,
		}
		if m.popup.isOpen {
			ms.PopupHTML = m.popup.html
		}
		out.Markers = append(out.Markers, ms)
	}

	for id, path := range s.sources {
		out.Sources[id] = slices.Clone(path)
	}

	for _, id := range s.layerSeq {
		l := s.layers[id]
		out.Layers = append(out.Layers, LayerState{
			ID:     l.ID,
			Source: l.Source,
			Layout: maps.Clone(l.Layout),
			Paint:  maps.Clone(l.Paint),
		})
	}

	if s.popup != nil {
		out.Popup = &PopupState{
			Coordinates: s.popup.At.CoordsToList(),
			HTML:        s.popup.HTML,
		}
	}

	return out
}
