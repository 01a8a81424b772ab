package ports

import "github.com/maxvelasco/portuguese-map/internal/domain"

// Popup event names accepted by PopupHandle.On.
const (
	PopupOpen  = "open"
	PopupClose = "close"
)

// Layer event names accepted by MapSurface.On.
const (
	LayerClick      = "click"
	LayerMouseEnter = "mouseenter"
	LayerMouseLeave = "mouseleave"
)

// MarkerElement describes the DOM element a marker is drawn with.
type MarkerElement struct {
	ClassName string
}

// PopupHandle is the floating panel attached to one marker.
type PopupHandle interface {
	// Register a handler for "open" or "close".
	On(event string, handler func())
	IsOpen() bool
}

// MarkerHandle is one pin placed on the surface.
type MarkerHandle interface {
	ID() string
	Coordinates() domain.Coordinates
	// Replace the popup HTML. The previous content is discarded.
	SetPopupContent(html string)
	OnClick(handler func())
	Popup() PopupHandle
}

// LayerEvent is delivered to layer handlers.
type LayerEvent struct {
	LayerID string
	At      domain.Coordinates
}

// LineLayer is the paint/layout definition of a line layer.
type LineLayer struct {
	ID     string
	Source string
	Layout map[string]any
	Paint  map[string]any
}

// MapSurface is the rendering collaborator: markers, line sources and
// layers, and the event wiring between them.
type MapSurface interface {
	AddMarker(coords domain.Coordinates, element MarkerElement) MarkerHandle
	AddLineSource(id string, path [][]float64) error
	AddLayer(layer LineLayer) error
	SetPaintProperty(layerID, property string, value any) error
	On(event, layerID string, handler func(LayerEvent))
	// Show a standalone popup anchored at a coordinate.
	ShowPopup(at domain.Coordinates, html string)
	SetCursor(cursor string)
	// Alive is false once the surface has been torn down.
	Alive() bool
}
