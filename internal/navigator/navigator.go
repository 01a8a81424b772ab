package navigator

import (
	"github.com/maxvelasco/portuguese-map/internal/domain"
	"github.com/maxvelasco/portuguese-map/internal/ports"
)

// State of a marker's popup.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// MarkerBinding ties one rendered marker to the group at its coordinates.
// It is created with the marker and dropped with it.
type MarkerBinding struct {
	marker ports.MarkerHandle
	key    string
	state  State
	// generation changes on every render and on close; controls carry the
	// generation they were rendered with.
	generation uint64
	view       View
}

func (b *MarkerBinding) Marker() ports.MarkerHandle { return b.marker }

func (b *MarkerBinding) Key() string { return b.key }

func (b *MarkerBinding) State() State { return b.state }

// Index is the group entry this binding currently shows, taken from its
// last render. Markers at the same coordinates share the group cursor, so
// after another binding advances, Index may lag the cursor until this
// binding renders again. Zero while Closed.
func (b *MarkerBinding) Index() int { return b.view.Index }

// View is the last render, zero while Closed.
func (b *MarkerBinding) View() View { return b.view }

// Navigator opens, advances and closes marker popups over a PopupGroupStore.
type Navigator struct {
	store    *PopupGroupStore
	bindings map[string]*MarkerBinding
}

func New(store *PopupGroupStore) *Navigator {
	return &Navigator{
		store:    store,
		bindings: make(map[string]*MarkerBinding),
	}
}

func (n *Navigator) Store() *PopupGroupStore { return n.store }

// RegisterEntry adds a narrative item to its coordinate group.
func (n *Navigator) RegisterEntry(entry domain.NarrativeEntry) (string, error) {
	return n.store.Register(entry)
}

// BindMarkerInteraction wires marker clicks to Open and popup close
// events to Close.
func (n *Navigator) BindMarkerInteraction(marker ports.MarkerHandle, coords domain.Coordinates) *MarkerBinding {
	b := &MarkerBinding{marker: marker, key: coords.Key()}

	marker.OnClick(func() { n.Open(b) })
	marker.Popup().On(ports.PopupClose, func() { n.Close(b) })

	n.bindings[marker.ID()] = b
	return b
}

// Binding returns the binding of a marker id.
func (n *Navigator) Binding(markerID string) (*MarkerBinding, bool) {
	b, ok := n.bindings[markerID]
	return b, ok
}

// Open shows the entry at the group's stored cursor. Absent or empty
// groups are ignored. Opening an open popup replaces its content.
func (n *Navigator) Open(b *MarkerBinding) (View, bool) {
	g, ok := n.store.Group(b.key)
	if !ok {
		return View{}, false
	}

	b.state = Open
	return n.show(b, g), true
}

// Advance steps the group cursor by dir and re-renders. It does nothing
// unless the popup is Open; single-entry groups stay put.
func (n *Navigator) Advance(b *MarkerBinding, dir Direction) (View, bool) {
	if b.state != Open {
		return View{}, false
	}
	g, ok := n.store.Group(b.key)
	if !ok {
		return View{}, false
	}
	if g.Len() == 1 {
		return b.view, true
	}

	g.step(dir)
	return n.show(b, g), true
}

// Close moves the popup to Closed and invalidates its controls.
// Closing a closed popup is a no-op.
func (n *Navigator) Close(b *MarkerBinding) {
	if b.state == Closed {
		return
	}
	b.state = Closed
	b.generation++
	b.view = View{}
}

func (n *Navigator) show(b *MarkerBinding, g *PopupGroup) View {
	b.generation++
	gen := b.generation

	b.view = Render(g, g.cursor, func(dir Direction) {
		if b.generation != gen || b.state != Open {
			return
		}
		n.Advance(b, dir)
	})
	b.marker.SetPopupContent(b.view.HTML)

	return b.view
}
