package handlers

import (
	"net/http"

	"github.com/maxvelasco/portuguese-map/internal/api/dto"
	"github.com/maxvelasco/portuguese-map/internal/catalog"
	"github.com/maxvelasco/portuguese-map/internal/geojson"
	"github.com/maxvelasco/portuguese-map/internal/markers"
)

// ContentHandler serves the curated content outside of any session.
type ContentHandler struct {
	Saved       *markers.Store
	Collections func() []catalog.Collection
}

// GeoJSON returns curated markers, routes and saved markers as a
// FeatureCollection.
func (h *ContentHandler) GeoJSON(w http.ResponseWriter, r *http.Request) {
	cols := catalog.Collections
	if h.Collections != nil {
		cols = h.Collections
	}

	fc := geojson.Collections(cols())
	if h.Saved != nil {
		fc = append(fc, geojson.Saved(h.Saved.List(r.Context()))...)
	}
	writeJSONType(w, r, http.StatusOK, "application/geo+json", fc)
}

// Nav returns the site toolbar entries.
func (h *ContentHandler) Nav(w http.ResponseWriter, r *http.Request) {
	items := catalog.Navigation()
	res := dto.NavResponse{Items: make([]dto.NavItemResponse, 0, len(items))}
	for _, it := range items {
		res.Items = append(res.Items, dto.NavItemResponse{Label: it.Label, Path: it.Path})
	}
	writeJSON(w, r, http.StatusOK, res)
}
