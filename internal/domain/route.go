package domain

import "fmt"

// Represents a connection drawn between two or more locations.
// A Route carries a single popup entry (never cycling) and is rendered
// as a solid line with an animated dashed line on top.
type Route struct {
	Path  []Coordinates
	Popup NarrativeEntry
}

// Validate checks that the route has at least two valid points.
func (r Route) Validate() error {
	if len(r.Path) < 2 {
		return fmt.Errorf("route %q: need at least 2 points, got %d", r.Popup.Title, len(r.Path))
	}
	for i, c := range r.Path {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("route %q: point #%d: %w", r.Popup.Title, i+1, err)
		}
	}
	return nil
}

// PathToList returns the path as [[lon, lat], ...].
func (r Route) PathToList() [][]float64 {
	out := make([][]float64, 0, len(r.Path))
	for _, c := range r.Path {
		out = append(out, c.CoordsToList())
	}
	return out
}

// SavedMarker is a user-created marker kept by the storage collaborator.
type SavedMarker struct {
	Coordinates Coordinates
	Title       string
	Description string
}
