package ports

import (
	"context"
	"errors"
	"itinerary-service/internal/domain"
)

// ErrNotFound is returned by repositories when an itinerary does not exist.
var ErrNotFound = errors.New("itinerary not found")

// Port: the persistence collaborator. It is the sole writer of durable
// storage and always receives whole itineraries produced by the engine.
type ItineraryRepository interface {
	// Retrieve a stored itinerary by id, or ErrNotFound.
	GetItinerary(ctx context.Context, id string) (domain.Itinerary, error)
	// Replace the stored itinerary (all days and items) with it.
	SaveItinerary(ctx context.Context, it domain.Itinerary) error
}
