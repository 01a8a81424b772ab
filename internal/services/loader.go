package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/maxvelasco/portuguese-map/internal/animation"
	"github.com/maxvelasco/portuguese-map/internal/catalog"
	"github.com/maxvelasco/portuguese-map/internal/domain"
	"github.com/maxvelasco/portuguese-map/internal/navigator"
	"github.com/maxvelasco/portuguese-map/internal/ports"
)

// Paint and layout of the two layers of every route.
var (
	solidLayout = map[string]any{
		"line-join": "round",
		"line-cap":  "round",
	}
	solidPaint = map[string]any{
		"line-color":   "green",
		"line-width":   6,
		"line-opacity": 0.4,
	}
	dashedPaint = map[string]any{
		"line-color":   "yellow",
		"line-width":   2,
		"line-opacity": 0.9,
	}
)

// LoadReport counts what a load placed on the surface.
type LoadReport struct {
	Markers  int
	Groups   int
	Routes   int
	Saved    int
	Rejected int
}

// load fills a freshly reset session with collections: entries are
// registered first, then markers are drawn and bound, then routes, then
// saved markers. Malformed content is logged and skipped.
// Callers hold s.mu.
func (s *Session) load(ctx context.Context, cols []catalog.Collection, clearSaved bool) LoadReport {
	var rep LoadReport

	if clearSaved {
		if err := s.saved.Clear(ctx); err != nil {
			log.Warn().Err(err).Str("session", s.id).Msg("clear saved markers failed")
		}
	}

	type placement struct {
		spec   catalog.MarkerSpec
		coords domain.Coordinates
	}
	var placements []placement

	for _, c := range cols {
		for _, m := range c.Markers {
			if _, err := s.nav.RegisterEntry(m.Entry); err != nil {
				rep.Rejected++
				log.Warn().Err(err).Str("collection", c.Name).Msg("skip marker")
				continue
			}
			placements = append(placements, placement{spec: m, coords: *m.Entry.Coordinates})
		}
	}

	for _, p := range placements {
		h := s.surface.AddMarker(p.coords, ports.MarkerElement{ClassName: p.spec.Type.ClassName()})
		s.nav.BindMarkerInteraction(h, p.coords)
		rep.Markers++
	}
	rep.Groups = s.nav.Store().Len()

	for _, c := range cols {
		for _, r := range c.Routes {
			if _, err := s.addRoute(r); err != nil {
				rep.Rejected++
				log.Warn().Err(err).Str("collection", c.Name).Msg("skip route")
				continue
			}
			rep.Routes++
		}
	}

	for _, m := range s.saved.List(ctx) {
		s.placeSavedMarker(m)
		rep.Saved++
	}

	return rep
}

// addRoute draws r as a solid line under an animated dashed line and wires
// its click and hover handlers. Callers hold s.mu.
func (s *Session) addRoute(r domain.Route) (*RouteLayers, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	rl := &RouteLayers{
		ID:       id,
		SourceID: "route-" + id,
		SolidID:  "route-" + id + "-solid",
		DashedID: "route-" + id + "-dashed",
		Route:    r,
	}

	if err := s.surface.AddLineSource(rl.SourceID, r.PathToList()); err != nil {
		return nil, fmt.Errorf("add route: %w", err)
	}
	if err := s.surface.AddLayer(ports.LineLayer{
		ID:     rl.SolidID,
		Source: rl.SourceID,
		Layout: solidLayout,
		Paint:  solidPaint,
	}); err != nil {
		return nil, fmt.Errorf("add route: %w", err)
	}

	dashed := make(map[string]any, len(dashedPaint)+1)
	for k, v := range dashedPaint {
		dashed[k] = v
	}
	dashed[animation.DashArrayProperty] = animation.Frame(0)
	if err := s.surface.AddLayer(ports.LineLayer{
		ID:     rl.DashedID,
		Source: rl.SourceID,
		Paint:  dashed,
	}); err != nil {
		return nil, fmt.Errorf("add route: %w", err)
	}

	html := navigator.RenderEntry(r.Popup)
	surf := s.surface
	surf.On(ports.LayerClick, rl.SolidID, func(e ports.LayerEvent) {
		surf.ShowPopup(e.At, html)
	})
	surf.On(ports.LayerMouseEnter, rl.SolidID, func(ports.LayerEvent) { surf.SetCursor("pointer") })
	surf.On(ports.LayerMouseLeave, rl.SolidID, func(ports.LayerEvent) { surf.SetCursor("") })

	s.animator.Add(rl.DashedID)

	s.routes[id] = rl
	s.order = append(s.order, id)
	return rl, nil
}
