package handlers

import (
	"net/http"

	"github.com/maxvelasco/portuguese-map/internal/api/dto"
	"github.com/maxvelasco/portuguese-map/internal/navigator"
	"github.com/maxvelasco/portuguese-map/internal/services"
)

// PopupHandler forwards marker events to the popup navigator of a session.
type PopupHandler struct {
	Sessions *services.Manager
}

func (h *PopupHandler) Click(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "click marker", err)
		return
	}

	st, err := s.ClickMarker(r.PathValue("marker"))
	if err != nil {
		writeServiceError(w, r, "click marker", err)
		return
	}
	writeJSON(w, r, http.StatusOK, popupResponse(st))
}

// Control presses the "next" or "prev" button of the open popup.
func (h *PopupHandler) Control(w http.ResponseWriter, r *http.Request) {
	dir, err := navigator.ParseDirection(r.PathValue("direction"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "direction must be next or prev")
		return
	}

	s, err := h.Sessions.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "press control", err)
		return
	}

	st, err := s.PressControl(r.PathValue("marker"), dir)
	if err != nil {
		writeServiceError(w, r, "press control", err)
		return
	}
	writeJSON(w, r, http.StatusOK, popupResponse(st))
}

func (h *PopupHandler) Close(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "close popup", err)
		return
	}

	st, err := s.ClosePopup(r.PathValue("marker"))
	if err != nil {
		writeServiceError(w, r, "close popup", err)
		return
	}
	writeJSON(w, r, http.StatusOK, popupResponse(st))
}

func popupResponse(st services.PopupState) dto.PopupResponse {
	res := dto.PopupResponse{
		MarkerID: st.MarkerID,
		Open:     st.Open,
		HTML:     st.HTML,
		Controls: []dto.ControlResponse{},
	}
	if !st.Open {
		return res
	}

	res.GroupKey = st.View.Key
	res.Index = st.View.Index
	res.Total = st.View.Total
	if res.Total == 0 {
		res.Total = 1
	}
	for _, c := range st.View.Controls {
		res.Controls = append(res.Controls, dto.ControlResponse{
			ElementID: c.ElementID,
			Label:     c.Label,
			Direction: c.Direction.String(),
		})
	}
	return res
}
