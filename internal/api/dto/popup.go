package dto

type ControlResponse struct {
	ElementID string `json:"element_id"`
	Label     string `json:"label"`
	Direction string `json:"direction"`
}

type PopupResponse struct {
	MarkerID string            `json:"marker_id"`
	Open     bool              `json:"open"`
	HTML     string            `json:"html,omitempty"`
	GroupKey string            `json:"group_key,omitempty"`
	Index    int               `json:"index"`
	Total    int               `json:"total"`
	Controls []ControlResponse `json:"controls"`
}

type RouteClickRequest struct {
	Lon *float64 `json:"lon"`
	Lat *float64 `json:"lat"`
}

type CursorResponse struct {
	Cursor string `json:"cursor"`
}

type FrameResponse struct {
	RouteID   string    `json:"route_id"`
	Step      int       `json:"step"`
	DashArray []float64 `json:"dash_array"`
}
