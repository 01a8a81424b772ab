package handlers

import (
	"net/http"
)

// HealthHandler reports liveness and the number of open map sessions.
type HealthHandler struct {
	Sessions interface{ Len() int }
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]any{"status": "ok"}
	if h.Sessions != nil {
		res["sessions"] = h.Sessions.Len()
	}
	writeJSON(w, r, http.StatusOK, res)
}
