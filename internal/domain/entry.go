package domain

import "strings"

// DefaultLinkLabel is shown for non-embedded links without an explicit label.
const DefaultLinkLabel = "Ver mais"

// Link is optional media attached to a narrative entry.
// Embedded links render as an iframe player, the rest as an anchor
// opening in a new tab.
type Link struct {
	URL   string
	Label string
	Embed bool
}

// NewLink returns nil for an empty URL so callers can pass raw table values.
func NewLink(url, label string, embed bool) *Link {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	if strings.TrimSpace(label) == "" {
		label = DefaultLinkLabel
	}
	return &Link{URL: url, Label: label, Embed: embed}
}

// NarrativeEntry is one story attached to a location.
//
// Coordinates is nil for entries that are only shown in route popups.
// Once an entry is registered its coordinates are the grouping key and
// must not change; the store keeps its own copy.
type NarrativeEntry struct {
	Title        string
	LocationName string
	Description  string
	Coordinates  *Coordinates
	Link         *Link
}

// Key returns the coordinate key, or ErrInvalidCoordinates when the entry
// has no usable location.
func (e NarrativeEntry) Key() (string, error) {
	if e.Coordinates == nil {
		return "", ErrInvalidCoordinates
	}
	if err := e.Coordinates.Validate(); err != nil {
		return "", err
	}
	return e.Coordinates.Key(), nil
}

// Clone returns a deep copy so stored entries cannot be mutated through
// the caller's pointers.
func (e NarrativeEntry) Clone() NarrativeEntry {
	out := e
	if e.Coordinates != nil {
		c := *e.Coordinates
		out.Coordinates = &c
	}
	if e.Link != nil {
		l := *e.Link
		out.Link = &l
	}
	return out
}

// MarkerType selects the icon used for a marker.
type MarkerType string

const (
	MarkerText   MarkerType = "TEXT"
	MarkerVideo  MarkerType = "VIDEO"
	MarkerPerson MarkerType = "PERSON"
	MarkerOther  MarkerType = "OTHER"
)

// ClassName returns the CSS class of the marker element.
func (t MarkerType) ClassName() string {
	switch t {
	case MarkerPerson:
		return "person-marker"
	case MarkerVideo:
		return "video-marker"
	case MarkerText:
		return "text-marker"
	default:
		return "marker"
	}
}
