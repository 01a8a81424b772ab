package surface

import (
	"slices"

	"github.com/maxvelasco/portuguese-map/internal/domain"
	"github.com/maxvelasco/portuguese-map/internal/ports"
)

// Marker is a pin on a Headless surface. Its state is guarded by the
// owning surface's lock.
type Marker struct {
	surface *Headless
	id      string
	coords  domain.Coordinates
	element ports.MarkerElement
	onClick []func()
	popup   *Popup
}

var _ ports.MarkerHandle = (*Marker)(nil)

func (m *Marker) ID() string { return m.id }

func (m *Marker) Coordinates() domain.Coordinates { return m.coords }

func (m *Marker) Element() ports.MarkerElement { return m.element }

func (m *Marker) SetPopupContent(html string) {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()
	m.popup.html = html
}

func (m *Marker) OnClick(handler func()) {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()
	m.onClick = append(m.onClick, handler)
}

func (m *Marker) Popup() ports.PopupHandle { return m.popup }

// Click runs the click handlers and then opens the popup, firing "open".
// Clicking a marker whose popup is already open re-opens it in place.
func (m *Marker) Click() {
	if !m.surface.Alive() {
		return
	}
	m.surface.mu.Lock()
	hs := slices.Clone(m.onClick)
	m.surface.mu.Unlock()

	for _, h := range hs {
		h()
	}
	m.popup.open()
}

// PopupHTML returns the current popup content.
func (m *Marker) PopupHTML() string { return m.popup.HTML() }

// ClosePopup closes the marker's popup as the close button would.
func (m *Marker) ClosePopup() {
	m.popup.Close()
}

// Popup is the panel attached to one marker.
type Popup struct {
	marker   *Marker
	html     string
	isOpen   bool
	handlers map[string][]func()
}

var _ ports.PopupHandle = (*Popup)(nil)

func (p *Popup) On(event string, handler func()) {
	mu := &p.marker.surface.mu
	mu.Lock()
	defer mu.Unlock()
	if p.handlers == nil {
		p.handlers = make(map[string][]func())
	}
	p.handlers[event] = append(p.handlers[event], handler)
}

func (p *Popup) IsOpen() bool {
	mu := &p.marker.surface.mu
	mu.Lock()
	defer mu.Unlock()
	return p.isOpen
}

// HTML returns the current popup content.
func (p *Popup) HTML() string {
	mu := &p.marker.surface.mu
	mu.Lock()
	defer mu.Unlock()
	return p.html
}

func (p *Popup) open() {
	p.fire(ports.PopupOpen, true)
}

// Close hides the popup and fires "close". Closing a closed popup does
// nothing.
func (p *Popup) Close() {
	mu := &p.marker.surface.mu
	mu.Lock()
	wasOpen := p.isOpen
	mu.Unlock()
	if !wasOpen {
		return
	}
	p.fire(ports.PopupClose, false)
}

func (p *Popup) fire(event string, open bool) {
	mu := &p.marker.surface.mu
	mu.Lock()
	p.isOpen = open
	hs := slices.Clone(p.handlers[event])
	mu.Unlock()

	for _, h := range hs {
		h()
	}
}
