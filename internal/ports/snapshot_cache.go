package ports

import (
	"context"
	"itinerary-service/internal/domain"
)

// Optional fast path holding the latest snapshot of itineraries being edited.
type SnapshotCache interface {
	// Return the cached snapshot; ok is false on a miss.
	Get(ctx context.Context, id string) (it domain.Itinerary, ok bool, err error)
	Put(ctx context.Context, it domain.Itinerary) error
}
