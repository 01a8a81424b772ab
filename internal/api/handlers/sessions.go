package handlers

import (
	"net/http"

	"github.com/maxvelasco/portuguese-map/internal/api/dto"
	"github.com/maxvelasco/portuguese-map/internal/domain"
	"github.com/maxvelasco/portuguese-map/internal/services"
	"github.com/maxvelasco/portuguese-map/internal/surface"
)

// SessionHandler creates, inspects and tears down map sessions.
type SessionHandler struct {
	Sessions    *services.Manager
	MapboxToken string
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, rep, err := h.Sessions.Create(r.Context())
	if err != nil {
		writeServiceError(w, r, "create session", err)
		return
	}

	snap, err := s.Snapshot()
	if err != nil {
		writeServiceError(w, r, "create session", err)
		return
	}

	res := h.sessionResponse(snap)
	res.Report = reportResponse(rep)
	writeJSON(w, r, http.StatusCreated, res)
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get session", err)
		return
	}

	snap, err := s.Snapshot()
	if err != nil {
		writeServiceError(w, r, "get session", err)
		return
	}
	writeJSON(w, r, http.StatusOK, h.sessionResponse(snap))
}

// Reload rebuilds the session's surface and popup groups.
func (h *SessionHandler) Reload(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rep, err := h.Sessions.Reload(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "reload session", err)
		return
	}

	s, err := h.Sessions.Get(id)
	if err != nil {
		writeServiceError(w, r, "reload session", err)
		return
	}
	snap, err := s.Snapshot()
	if err != nil {
		writeServiceError(w, r, "reload session", err)
		return
	}

	res := h.sessionResponse(snap)
	res.Report = reportResponse(rep)
	writeJSON(w, r, http.StatusOK, res)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Teardown(r.PathValue("id")); err != nil {
		writeServiceError(w, r, "delete session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddMarker places a user marker on the session and saves it.
func (h *SessionHandler) AddMarker(w http.ResponseWriter, r *http.Request) {
	var req dto.SavedMarkerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	coords, err := domain.CoordinatesFromList(req.Coordinates)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "coordinates must be a valid [lon, lat] pair")
		return
	}

	s, err := h.Sessions.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "add marker", err)
		return
	}

	ms, err := s.AddSavedMarker(r.Context(), domain.SavedMarker{
		Coordinates: coords,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, "add marker", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, markerResponse(ms))
}

func (h *SessionHandler) sessionResponse(snap services.SessionSnapshot) dto.SessionResponse {
	res := dto.SessionResponse{
		SessionID: snap.ID,
		CreatedAt: snap.CreatedAt,
		Alive:     snap.Surface.Alive,
		View: dto.ViewResponse{
			Center:      snap.View.Center.CoordsToList(),
			Zoom:        snap.View.Zoom,
			Style:       snap.View.Style,
			Language:    snap.View.Language,
			AccessToken: h.MapboxToken,
		},
		Groups:  snap.Groups,
		Markers: make([]dto.MarkerResponse, 0, len(snap.Surface.Markers)),
		Sources: snap.Surface.Sources,
		Layers:  make([]dto.LayerResponse, 0, len(snap.Surface.Layers)),
		Routes:  make([]dto.RouteResponse, 0, len(snap.Routes)),
		Cursor:  snap.Surface.Cursor,
	}

	for _, m := range snap.Surface.Markers {
		res.Markers = append(res.Markers, markerResponse(m))
	}
	for _, l := range snap.Surface.Layers {
		res.Layers = append(res.Layers, dto.LayerResponse{
			ID:     l.ID,
			Source: l.Source,
			Layout: l.Layout,
			Paint:  l.Paint,
		})
	}
	for _, rt := range snap.Routes {
		res.Routes = append(res.Routes, dto.RouteResponse{
			ID:            rt.ID,
			SourceID:      rt.SourceID,
			SolidLayerID:  rt.SolidID,
			DashedLayerID: rt.DashedID,
			Path:          rt.Route.PathToList(),
			Title:         rt.Route.Popup.Title,
		})
	}
	if p := snap.Surface.Popup; p != nil {
		res.Popup = &dto.StandalonePopupResponse{Coordinates: p.Coordinates, HTML: p.HTML}
	}

	return res
}

func markerResponse(m surface.MarkerState) dto.MarkerResponse {
	return dto.MarkerResponse{
		ID:          m.ID,
		Key:         m.Key,
		Coordinates: m.Coords,
		ClassName:   m.ClassName,
		PopupOpen:   m.PopupOpen,
		PopupHTML:   m.PopupHTML,
	}
}

func reportResponse(rep services.LoadReport) *dto.LoadReportResponse {
	return &dto.LoadReportResponse{
		Markers:  rep.Markers,
		Groups:   rep.Groups,
		Routes:   rep.Routes,
		Saved:    rep.Saved,
		Rejected: rep.Rejected,
	}
}
