package api

import (
	"net/http"

	"github.com/maxvelasco/portuguese-map/internal/api/handlers"
	"github.com/maxvelasco/portuguese-map/internal/services"
)

// NewRouter wires HTTP handlers to the session manager and returns an http.Handler.
func NewRouter(mgr *services.Manager, mapboxToken string) http.Handler {
	mux := http.NewServeMux()

	health := &handlers.HealthHandler{Sessions: mgr}
	sessions := &handlers.SessionHandler{Sessions: mgr, MapboxToken: mapboxToken}
	popups := &handlers.PopupHandler{Sessions: mgr}
	routes := &handlers.RouteHandler{Sessions: mgr}
	saved := &handlers.MarkerHandler{Store: mgr.Saved()}
	content := &handlers.ContentHandler{Saved: mgr.Saved(), Collections: mgr.Collections}

	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /sessions", sessions.Create)
	mux.HandleFunc("GET /sessions/{id}", sessions.Get)
	mux.HandleFunc("DELETE /sessions/{id}", sessions.Delete)
	mux.HandleFunc("POST /sessions/{id}/reload", sessions.Reload)
	mux.HandleFunc("POST /sessions/{id}/markers", sessions.AddMarker)

	mux.HandleFunc("POST /sessions/{id}/markers/{marker}/click", popups.Click)
	mux.HandleFunc("POST /sessions/{id}/markers/{marker}/controls/{direction}", popups.Control)
	mux.HandleFunc("POST /sessions/{id}/markers/{marker}/close", popups.Close)

	mux.HandleFunc("POST /sessions/{id}/routes/{route}/click", routes.Click)
	mux.HandleFunc("POST /sessions/{id}/routes/{route}/hover/{state}", routes.Hover)
	mux.HandleFunc("GET /sessions/{id}/routes/{route}/frame", routes.Frame)
	mux.HandleFunc("DELETE /sessions/{id}/popup", routes.ClosePopup)

	mux.HandleFunc("GET /markers", saved.List)
	mux.HandleFunc("DELETE /markers", saved.Clear)

	mux.HandleFunc("GET /collections.geojson", content.GeoJSON)
	mux.HandleFunc("GET /nav", content.Nav)

	return requestID(loggingMiddleware(mux))
}
