package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
	"time"

	"github.com/redis/go-redis/v9"
)

const snapshotKeyPrefix = "itinerary:snapshot:"

// RedisSnapshotCache keeps the latest itinerary snapshots in Redis as JSON.
// Entries expire after TTL (0 = never) so abandoned edits do not pile up.
type RedisSnapshotCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration) *RedisSnapshotCache {
	return &RedisSnapshotCache{Client: client, TTL: ttl}
}

func (c *RedisSnapshotCache) Get(ctx context.Context, id string) (_ domain.Itinerary, _ bool, err error) {
	defer obs.Time(ctx, "snapshot.cache.Get")(&err)

	if c.Client == nil {
		return domain.Itinerary{}, false, errors.New("snapshot cache: client is nil")
	}

	data, err := c.Client.Get(ctx, snapshotKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Itinerary{}, false, nil
	}
	if err != nil {
		return domain.Itinerary{}, false, fmt.Errorf("get snapshot cache %q: %w", id, err)
	}

	var it domain.Itinerary
	if err := json.Unmarshal(data, &it); err != nil {
		return domain.Itinerary{}, false, fmt.Errorf("get snapshot cache %q: parse json: %w", id, err)
	}
	return it, true, nil
}

func (c *RedisSnapshotCache) Put(ctx context.Context, it domain.Itinerary) error {
	if c.Client == nil {
		return errors.New("snapshot cache: client is nil")
	}
	if it.ID == "" {
		return errors.New("put snapshot cache: id must not be empty")
	}

	data, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("put snapshot cache %q: encode json: %w", it.ID, err)
	}
	if err := c.Client.Set(ctx, snapshotKeyPrefix+it.ID, data, c.TTL).Err(); err != nil {
		return fmt.Errorf("put snapshot cache %q: %w", it.ID, err)
	}
	return nil
}
