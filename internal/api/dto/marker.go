package dto

type SavedMarkerRequest struct {
	Coordinates []float64 `json:"coordinates"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type SavedMarkerResponse struct {
	Coordinates []float64 `json:"coordinates"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type ListSavedMarkersResponse struct {
	Markers []SavedMarkerResponse `json:"markers"`
}

type NavItemResponse struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type NavResponse struct {
	Items []NavItemResponse `json:"items"`
}
