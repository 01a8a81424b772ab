// Package geojson exports curated content and saved markers as a GeoJSON
// FeatureCollection.
package geojson

import (
	"encoding/json"
	"fmt"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/rs/zerolog/log"

	"github.com/maxvelasco/portuguese-map/internal/catalog"
	"github.com/maxvelasco/portuguese-map/internal/domain"
)

// Feature kinds in the "kind" property.
const (
	KindMarker = "marker"
	KindRoute  = "route"
	KindSaved  = "saved"
)

func point(c domain.Coordinates) (geom.Geometry, error) {
	if err := c.Validate(); err != nil {
		return geom.Geometry{}, fmt.Errorf("point %s: %w", c.Key(), err)
	}
	pt, err := geom.NewPoint(geom.Coordinates{XY: geom.XY{X: c.Lon, Y: c.Lat}, Type: geom.DimXY})
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("point %s: %w", c.Key(), err)
	}
	return pt.AsGeometry(), nil
}

func lineString(path []domain.Coordinates) (geom.Geometry, error) {
	flat := make([]float64, 0, 2*len(path))
	for _, c := range path {
		flat = append(flat, c.Lon, c.Lat)
	}
	ls, err := geom.NewLineString(geom.NewSequence(flat, geom.DimXY))
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("line string: %w", err)
	}
	return ls.AsGeometry(), nil
}

func entryProperties(kind string, e domain.NarrativeEntry) map[string]any {
	props := map[string]any{
		"kind":        kind,
		"title":       e.Title,
		"description": e.Description,
	}
	if e.LocationName != "" {
		props["location_name"] = e.LocationName
	}
	if e.Link != nil {
		props["url"] = e.Link.URL
		props["embed"] = e.Link.Embed
	}
	return props
}

// Collections converts every valid marker and route of cols. Markers
// without usable coordinates and routes with fewer than two points are
// left out.
func Collections(cols []catalog.Collection) geom.GeoJSONFeatureCollection {
	out := geom.GeoJSONFeatureCollection{}
	for _, c := range cols {
		for _, m := range c.Markers {
			key, err := m.Entry.Key()
			if err != nil {
				continue
			}
			g, err := point(*m.Entry.Coordinates)
			if err != nil {
				log.Warn().Err(err).Str("title", m.Entry.Title).Msg("skip marker feature")
				continue
			}
			props := entryProperties(KindMarker, m.Entry)
			props["collection"] = c.Name
			props["key"] = key
			props["marker_type"] = string(m.Type)
			props["class_name"] = m.Type.ClassName()
			out = append(out, geom.GeoJSONFeature{
				Geometry:   g,
				Properties: props,
			})
		}
		for _, r := range c.Routes {
			if r.Validate() != nil {
				continue
			}
			g, err := lineString(r.Path)
			if err != nil {
				log.Warn().Err(err).Str("title", r.Popup.Title).Msg("skip route feature")
				continue
			}
			props := entryProperties(KindRoute, r.Popup)
			props["collection"] = c.Name
			out = append(out, geom.GeoJSONFeature{
				Geometry:   g,
				Properties: props,
			})
		}
	}
	return out
}

// Saved converts user markers, leaving out those with unusable coordinates.
func Saved(saved []domain.SavedMarker) geom.GeoJSONFeatureCollection {
	out := make(geom.GeoJSONFeatureCollection, 0, len(saved))
	for _, m := range saved {
		g, err := point(m.Coordinates)
		if err != nil {
			log.Warn().Err(err).Str("title", m.Title).Msg("skip saved marker feature")
			continue
		}
		out = append(out, geom.GeoJSONFeature{
			Geometry: g,
			Properties: map[string]any{
				"kind":        KindSaved,
				"key":         m.Coordinates.Key(),
				"title":       m.Title,
				"description": m.Description,
				"marker_type": string(domain.MarkerOther),
				"class_name":  domain.MarkerOther.ClassName(),
			},
		})
	}
	return out
}

// Marshal encodes the curated collections followed by the saved markers.
func Marshal(cols []catalog.Collection, saved []domain.SavedMarker) ([]byte, error) {
	fc := append(Collections(cols), Saved(saved)...)
	b, err := json.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("marshal geojson: %w", err)
	}
	return b, nil
}
