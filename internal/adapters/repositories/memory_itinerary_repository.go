package repositories

import (
	"context"
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/ports"
	"sync"
)

// MemoryItineraryRepository keeps itineraries in process memory. It backs
// tests and DB_DRIVER=memory runs.
type MemoryItineraryRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Itinerary
}

func NewMemoryItineraryRepository() *MemoryItineraryRepository {
	return &MemoryItineraryRepository{items: make(map[string]domain.Itinerary)}
}

func (m *MemoryItineraryRepository) GetItinerary(ctx context.Context, id string) (domain.Itinerary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, ok := m.items[id]
	if !ok {
		return domain.Itinerary{}, fmt.Errorf("get itinerary %q: %w", id, ports.ErrNotFound)
	}
	return it.Clone(), nil
}

func (m *MemoryItineraryRepository) SaveItinerary(ctx context.Context, it domain.Itinerary) error {
	if it.ID == "" {
		return fmt.Errorf("save itinerary: id must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[it.ID] = it.Clone()
	return nil
}
