package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/maxvelasco/portuguese-map/internal/animation"
	"github.com/maxvelasco/portuguese-map/internal/catalog"
	"github.com/maxvelasco/portuguese-map/internal/domain"
	"github.com/maxvelasco/portuguese-map/internal/markers"
	"github.com/maxvelasco/portuguese-map/internal/navigator"
	"github.com/maxvelasco/portuguese-map/internal/ports"
	"github.com/maxvelasco/portuguese-map/internal/surface"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session closed")
	ErrMarkerNotFound  = errors.New("marker not found")
	ErrRouteNotFound   = errors.New("route not found")
)

// RouteLayers records the surface identifiers owned by one rendered route.
type RouteLayers struct {
	ID       string
	SourceID string
	SolidID  string
	DashedID string
	Route    domain.Route
}

// Session is one loaded map: its surface, popup groups, route animation and
// access to the saved marker list. Every event of a session runs under its
// mutex.
type Session struct {
	id        string
	createdAt time.Time
	view      catalog.View
	saved     *markers.Store

	mu       sync.Mutex
	closed   bool
	surface  *surface.Headless
	nav      *navigator.Navigator
	animator *animation.Animator
	cancel   context.CancelFunc
	done     chan struct{}
	routes   map[string]*RouteLayers
	order    []string
}

func newSession(id string, view catalog.View, saved *markers.Store) *Session {
	return &Session{
		id:        id,
		createdAt: time.Now().UTC(),
		view:      view,
		saved:     saved,
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) CreatedAt() time.Time { return s.createdAt }

func (s *Session) View() catalog.View { return s.view }

// reset drops the current surface, if any, and installs empty state.
// Callers hold s.mu.
func (s *Session) reset(frame time.Duration) {
	s.stopLocked()

	s.surface = surface.NewHeadless()
	s.nav = navigator.New(navigator.NewPopupGroupStore())
	s.animator = animation.NewAnimator(s.surface, frame)
	s.routes = make(map[string]*RouteLayers)
	s.order = nil
}

// start launches the dash animation. Callers hold s.mu.
func (s *Session) start() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	go func(a *animation.Animator) {
		defer close(done)
		a.Run(ctx)
	}(s.animator)
}

// stopLocked cancels the animation, waits for it, and removes the surface.
func (s *Session) stopLocked() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
		s.cancel = nil
		s.done = nil
	}
	if s.surface != nil {
		s.surface.Remove()
	}
}

// Close tears the session down. Later calls return ErrSessionClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.stopLocked()
	log.Debug().Str("session", s.id).Msg("session closed")
}

func (s *Session) lock() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	return nil
}

// SessionSnapshot is what a client needs to draw a session.
type SessionSnapshot struct {
	ID        string
	CreatedAt time.Time
	View      catalog.View
	Surface   surface.Snapshot
	Routes    []RouteLayers
	Groups    int
}

func (s *Session) Snapshot() (SessionSnapshot, error) {
	if err := s.lock(); err != nil {
		return SessionSnapshot{}, err
	}
	defer s.mu.Unlock()

	routes := make([]RouteLayers, 0, len(s.order))
	for _, id := range s.order {
		routes = append(routes, *s.routes[id])
	}

	return SessionSnapshot{
		ID:        s.id,
		CreatedAt: s.createdAt,
		View:      s.view,
		Surface:   s.surface.Snapshot(),
		Routes:    routes,
		Groups:    s.nav.Store().Len(),
	}, nil
}

// PopupState is the result of a popup event.
type PopupState struct {
	MarkerID string
	Open     bool
	HTML     string
	View     navigator.View
}

func (s *Session) popupState(markerID string, m *surface.Marker) PopupState {
	st := PopupState{MarkerID: markerID, Open: m.Popup().IsOpen()}
	if st.Open {
		st.HTML = m.PopupHTML()
	}
	if b, ok := s.nav.Binding(markerID); ok {
		st.View = b.View()
		st.Open = st.Open && b.State() == navigator.Open
	}
	return st
}

func (s *Session) marker(markerID string) (*surface.Marker, error) {
	m, ok := s.surface.Marker(markerID)
	if !ok {
		return nil, fmt.Errorf("marker %q: %w", markerID, ErrMarkerNotFound)
	}
	return m, nil
}

// ClickMarker dispatches a click on a marker.
func (s *Session) ClickMarker(markerID string) (PopupState, error) {
	if err := s.lock(); err != nil {
		return PopupState{}, err
	}
	defer s.mu.Unlock()

	m, err := s.marker(markerID)
	if err != nil {
		return PopupState{}, err
	}
	m.Click()
	return s.popupState(markerID, m), nil
}

// PressControl activates the previous/next control of the popup currently
// shown on a marker. Pressing a control of a closed or single-entry popup
// changes nothing.
func (s *Session) PressControl(markerID string, dir navigator.Direction) (PopupState, error) {
	if err := s.lock(); err != nil {
		return PopupState{}, err
	}
	defer s.mu.Unlock()

	m, err := s.marker(markerID)
	if err != nil {
		return PopupState{}, err
	}
	if b, ok := s.nav.Binding(markerID); ok {
		if c, ok := b.View().Control(dir); ok {
			c.Invoke()
		}
	}
	return s.popupState(markerID, m), nil
}

// ClosePopup closes the popup on a marker.
func (s *Session) ClosePopup(markerID string) (PopupState, error) {
	if err := s.lock(); err != nil {
		return PopupState{}, err
	}
	defer s.mu.Unlock()

	m, err := s.marker(markerID)
	if err != nil {
		return PopupState{}, err
	}
	m.ClosePopup()
	return s.popupState(markerID, m), nil
}

func (s *Session) route(routeID string) (*RouteLayers, error) {
	r, ok := s.routes[routeID]
	if !ok {
		return nil, fmt.Errorf("route %q: %w", routeID, ErrRouteNotFound)
	}
	return r, nil
}

// ClickRoute dispatches a click on a route's solid line at a position and
// returns the standalone popup it opened.
func (s *Session) ClickRoute(routeID string, at domain.Coordinates) (*surface.PopupState, error) {
	if err := at.Validate(); err != nil {
		return nil, fmt.Errorf("click route: %w", err)
	}
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	r, err := s.route(routeID)
	if err != nil {
		return nil, err
	}
	s.surface.Fire(ports.LayerClick, r.SolidID, at)
	return s.surface.Snapshot().Popup, nil
}

// HoverRoute dispatches mouse enter or leave on a route and returns the
// resulting cursor.
func (s *Session) HoverRoute(routeID string, enter bool) (string, error) {
	if err := s.lock(); err != nil {
		return "", err
	}
	defer s.mu.Unlock()

	r, err := s.route(routeID)
	if err != nil {
		return "", err
	}
	event := ports.LayerMouseLeave
	if enter {
		event = ports.LayerMouseEnter
	}
	s.surface.Fire(event, r.SolidID, domain.Coordinates{})
	return s.surface.Snapshot().Cursor, nil
}

// RouteFrame returns the dash pattern currently painted on a route.
func (s *Session) RouteFrame(routeID string) ([]float64, int, error) {
	if err := s.lock(); err != nil {
		return nil, 0, err
	}
	defer s.mu.Unlock()

	r, err := s.route(routeID)
	if err != nil {
		return nil, 0, err
	}
	v, _ := s.surface.PaintProperty(r.DashedID, animation.DashArrayProperty)
	dash, _ := v.([]float64)
	return dash, s.animator.Step(), nil
}

// CloseRoutePopup hides the standalone route popup.
func (s *Session) CloseRoutePopup() error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	s.surface.CloseStandalonePopup()
	return nil
}

// AddSavedMarker places a user marker and appends it to storage.
func (s *Session) AddSavedMarker(ctx context.Context, m domain.SavedMarker) (surface.MarkerState, error) {
	if err := markers.Validate(m); err != nil {
		return surface.MarkerState{}, fmt.Errorf("add saved marker: %w", err)
	}
	if err := s.lock(); err != nil {
		return surface.MarkerState{}, err
	}
	defer s.mu.Unlock()

	if err := s.saved.Append(ctx, m); err != nil {
		return surface.MarkerState{}, fmt.Errorf("add saved marker: %w", err)
	}
	return s.placeSavedMarker(m), nil
}

// placeSavedMarker draws m with a fixed single popup. Callers hold s.mu.
func (s *Session) placeSavedMarker(m domain.SavedMarker) surface.MarkerState {
	c := m.Coordinates
	h := s.surface.AddMarker(c, ports.MarkerElement{ClassName: domain.MarkerOther.ClassName()})
	h.SetPopupContent(navigator.RenderEntry(domain.NarrativeEntry{
		Title:       m.Title,
		Description: m.Description,
		Coordinates: &c,
	}))
	return surface.MarkerState{
		ID:        h.ID(),
		Key:       c.Key(),
		Coords:    c.CoordsToList(),
		ClassName: domain.MarkerOther.ClassName(),
	}
}
