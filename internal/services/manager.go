package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/maxvelasco/portuguese-map/internal/animation"
	"github.com/maxvelasco/portuguese-map/internal/catalog"
	"github.com/maxvelasco/portuguese-map/internal/markers"
	"github.com/maxvelasco/portuguese-map/internal/platform/obs"
)

type ManagerOptions struct {
	Frame       time.Duration
	ClearOnLoad bool
	View        catalog.View
	// Collections defaults to catalog.Collections.
	Collections func() []catalog.Collection
}

// Manager owns the live sessions.
type Manager struct {
	saved *markers.Store
	opts  ManagerOptions

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(saved *markers.Store, opts ManagerOptions) *Manager {
	if opts.Frame <= 0 {
		opts.Frame = animation.DefaultFrame
	}
	if opts.Collections == nil {
		opts.Collections = catalog.Collections
	}
	if opts.View == (catalog.View{}) {
		opts.View = catalog.DefaultView()
	}
	return &Manager{
		saved:    saved,
		opts:     opts,
		sessions: make(map[string]*Session),
	}
}

// Saved exposes the saved marker store shared by all sessions.
func (m *Manager) Saved() *markers.Store { return m.saved }

// Collections returns the content every session is loaded from.
func (m *Manager) Collections() []catalog.Collection { return m.opts.Collections() }

// Create loads a new session.
func (m *Manager) Create(ctx context.Context) (_ *Session, _ LoadReport, err error) {
	defer obs.Time(ctx, "session.Create")(&err)

	s := newSession(uuid.NewString(), m.opts.View, m.saved)

	s.mu.Lock()
	s.reset(m.opts.Frame)
	rep := s.load(ctx, m.opts.Collections(), m.opts.ClearOnLoad)
	s.start()
	s.mu.Unlock()

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	log.Info().
		Str("req_id", obs.RequestID(ctx)).
		Str("session", s.id).
		Int("markers", rep.Markers).
		Int("groups", rep.Groups).
		Int("routes", rep.Routes).
		Int("saved", rep.Saved).
		Int("rejected", rep.Rejected).
		Msg("session loaded")

	return s, rep, nil
}

// Reload rebuilds a session from scratch: a new surface, new popup groups
// and a restarted animation.
func (m *Manager) Reload(ctx context.Context, id string) (_ LoadReport, err error) {
	defer obs.Time(ctx, "session.Reload")(&err)

	s, err := m.Get(id)
	if err != nil {
		return LoadReport{}, err
	}
	if err := s.lock(); err != nil {
		return LoadReport{}, err
	}
	defer s.mu.Unlock()

	s.reset(m.opts.Frame)
	rep := s.load(ctx, m.opts.Collections(), m.opts.ClearOnLoad)
	s.start()
	return rep, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	return s, nil
}

// Teardown closes and forgets a session.
func (m *Manager) Teardown(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	s.Close()
	return nil
}

// TeardownAll closes every session concurrently and waits for them.
func (m *Manager) TeardownAll() {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	var wg sync.WaitGroup
	for _, s := range all {
		wg.Add(1)
		go func(s *Session) {
			defer wg.Done()
			s.Close()
		}(s)
	}
	wg.Wait()
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
