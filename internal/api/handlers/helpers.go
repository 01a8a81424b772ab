package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/maxvelasco/portuguese-map/internal/domain"
	"github.com/maxvelasco/portuguese-map/internal/markers"
	"github.com/maxvelasco/portuguese-map/internal/platform/obs"
	"github.com/maxvelasco/portuguese-map/internal/services"
)

// maxBodyBytes bounds request bodies; the largest legitimate one is a
// saved marker.
const maxBodyBytes = 64 << 10

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	writeJSONType(w, r, status, "application/json", v)
}

func writeJSONType(w http.ResponseWriter, r *http.Request, status int, contentType string, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().
			Err(err).
			Str("req_id", obs.RequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeJSON reads exactly one JSON object into v. On failure it writes the
// error response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// writeServiceError maps service errors to responses without leaking
// internals.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, services.ErrSessionClosed):
		writeError(w, r, http.StatusNotFound, "session not found")
	case errors.Is(err, services.ErrMarkerNotFound):
		writeError(w, r, http.StatusNotFound, "marker not found")
	case errors.Is(err, services.ErrRouteNotFound):
		writeError(w, r, http.StatusNotFound, "route not found")
	case errors.Is(err, markers.ErrIncompleteMarker):
		writeError(w, r, http.StatusBadRequest, "title, description and valid coordinates are required")
	case errors.Is(err, domain.ErrInvalidCoordinates):
		writeError(w, r, http.StatusBadRequest, "invalid coordinates")
	default:
		log.Error().
			Err(err).
			Str("req_id", obs.RequestID(r.Context())).
			Str("op", op).
			Msg("request failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
