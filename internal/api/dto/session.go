package dto

import "time"

type ViewResponse struct {
	Center      []float64 `json:"center"`
	Zoom        float64   `json:"zoom"`
	Style       string    `json:"style"`
	Language    string    `json:"language"`
	AccessToken string    `json:"access_token,omitempty"`
}

type MarkerResponse struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Coordinates []float64 `json:"coordinates"`
	ClassName   string    `json:"class_name"`
	PopupOpen   bool      `json:"popup_open"`
	PopupHTML   string    `json:"popup_html,omitempty"`
}

type LayerResponse struct {
	ID     string         `json:"id"`
	Source string         `json:"source"`
	Layout map[string]any `json:"layout,omitempty"`
	Paint  map[string]any `json:"paint"`
}

type RouteResponse struct {
	ID            string      `json:"id"`
	SourceID      string      `json:"source_id"`
	SolidLayerID  string      `json:"solid_layer_id"`
	DashedLayerID string      `json:"dashed_layer_id"`
	Path          [][]float64 `json:"path"`
	Title         string      `json:"title"`
}

type StandalonePopupResponse struct {
	Coordinates []float64 `json:"coordinates"`
	HTML        string    `json:"html"`
}

type LoadReportResponse struct {
	Markers  int `json:"markers"`
	Groups   int `json:"groups"`
	Routes   int `json:"routes"`
	Saved    int `json:"saved"`
	Rejected int `json:"rejected"`
}

type SessionResponse struct {
	SessionID string                   `json:"session_id"`
	CreatedAt time.Time                `json:"created_at"`
	Alive     bool                     `json:"alive"`
	View      ViewResponse             `json:"view"`
	Groups    int                      `json:"groups"`
	Markers   []MarkerResponse         `json:"markers"`
	Sources   map[string][][]float64   `json:"sources"`
	Layers    []LayerResponse          `json:"layers"`
	Routes    []RouteResponse          `json:"routes"`
	Popup     *StandalonePopupResponse `json:"popup,omitempty"`
	Cursor    string                   `json:"cursor"`
	Report    *LoadReportResponse      `json:"report,omitempty"`
}
