package handlers

import (
	"net/http"

	"github.com/maxvelasco/portuguese-map/internal/api/dto"
	"github.com/maxvelasco/portuguese-map/internal/domain"
	"github.com/maxvelasco/portuguese-map/internal/services"
)

// RouteHandler forwards route line events to a session.
type RouteHandler struct {
	Sessions *services.Manager
}

func (h *RouteHandler) Click(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteClickRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Lon == nil || req.Lat == nil {
		writeError(w, r, http.StatusBadRequest, "lon and lat are required")
		return
	}

	s, err := h.Sessions.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "click route", err)
		return
	}

	p, err := s.ClickRoute(r.PathValue("route"), domain.Coordinates{Lon: *req.Lon, Lat: *req.Lat})
	if err != nil {
		writeServiceError(w, r, "click route", err)
		return
	}
	if p == nil {
		writeError(w, r, http.StatusNotFound, "route not found")
		return
	}
	writeJSON(w, r, http.StatusOK, dto.StandalonePopupResponse{Coordinates: p.Coordinates, HTML: p.HTML})
}

// Hover handles "enter" and "leave".
func (h *RouteHandler) Hover(w http.ResponseWriter, r *http.Request) {
	var enter bool
	switch r.PathValue("state") {
	case "enter":
		enter = true
	case "leave":
	default:
		writeError(w, r, http.StatusBadRequest, "state must be enter or leave")
		return
	}

	s, err := h.Sessions.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "hover route", err)
		return
	}

	cursor, err := s.HoverRoute(r.PathValue("route"), enter)
	if err != nil {
		writeServiceError(w, r, "hover route", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.CursorResponse{Cursor: cursor})
}

func (h *RouteHandler) Frame(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "route frame", err)
		return
	}

	routeID := r.PathValue("route")
	dash, step, err := s.RouteFrame(routeID)
	if err != nil {
		writeServiceError(w, r, "route frame", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FrameResponse{RouteID: routeID, Step: step, DashArray: dash})
}

// ClosePopup hides the route popup of a session.
func (h *RouteHandler) ClosePopup(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "close route popup", err)
		return
	}
	if err := s.CloseRoutePopup(); err != nil {
		writeServiceError(w, r, "close route popup", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
