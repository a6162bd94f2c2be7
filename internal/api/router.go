package api

import (
	"itinerary-service/internal/api/handlers"
	"itinerary-service/internal/ports"
	"itinerary-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// cache may be nil.
func NewRouter(repo ports.ItineraryRepository, cache ports.SnapshotCache, session *services.EditSession) http.Handler {
	mux := http.NewServeMux()

	itineraryHandler := &handlers.ItineraryHandler{
		Repo:    repo,
		Cache:   cache,
		Session: session,
	}
	rebuildHandler := &handlers.RebuildHandler{DefaultStart: session.DefaultStart}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("POST /itineraries", itineraryHandler.Import)
	mux.HandleFunc("GET /itineraries/{id}", itineraryHandler.Get)
	mux.HandleFunc("POST /itineraries/{id}/operations", itineraryHandler.ApplyOperation)
	mux.HandleFunc("POST /days/rebuild", rebuildHandler.Rebuild)

	return loggingMiddleware(mux)
}
