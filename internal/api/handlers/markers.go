package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/maxvelasco/portuguese-map/internal/api/dto"
	"github.com/maxvelasco/portuguese-map/internal/markers"
	"github.com/maxvelasco/portuguese-map/internal/platform/obs"
)

// MarkerHandler exposes the saved marker list.
type MarkerHandler struct {
	Store *markers.Store
}

func (h *MarkerHandler) List(w http.ResponseWriter, r *http.Request) {
	saved := h.Store.List(r.Context())

	res := dto.ListSavedMarkersResponse{
		Markers: make([]dto.SavedMarkerResponse, 0, len(saved)),
	}
	for _, m := range saved {
		res.Markers = append(res.Markers, dto.SavedMarkerResponse{
			Coordinates: m.Coordinates.CoordsToList(),
			Title:       m.Title,
			Description: m.Description,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *MarkerHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Clear(r.Context()); err != nil {
		log.Error().Err(err).Str("req_id", obs.RequestID(r.Context())).Msg("clear markers failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
