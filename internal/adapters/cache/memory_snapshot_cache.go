package cache

import (
	"context"
	"itinerary-service/internal/domain"
	"sync"
)

// MemorySnapshotCache is an in-process SnapshotCache for tests. The server
// runs without a cache when no Redis address is configured.
type MemorySnapshotCache struct {
	mu        sync.RWMutex
	snapshots map[string]domain.Itinerary
}

func NewMemorySnapshotCache() *MemorySnapshotCache {
	return &MemorySnapshotCache{snapshots: make(map[string]domain.Itinerary)}
}

func (c *MemorySnapshotCache) Get(ctx context.Context, id string) (domain.Itinerary, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, ok := c.snapshots[id]
	if !ok {
		return domain.Itinerary{}, false, nil
	}
	return it.Clone(), true, nil
}

func (c *MemorySnapshotCache) Put(ctx context.Context, it domain.Itinerary) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshots[it.ID] = it.Clone()
	return nil
}
