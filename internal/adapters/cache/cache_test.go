package cache

import (
	"context"
	"itinerary-service/internal/domain"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func snapshot() domain.Itinerary {
	return domain.Itinerary{
		ID:    "trip-1",
		Title: "Kyoto",
		Days: []domain.Day{
			{Number: 1, Items: []domain.Item{
				{ID: "a", Category: domain.CategoryDestination, Name: "Fushimi Inari", TimeSlot: "08:00:00", Duration: 120, Day: 1},
			}},
			{Number: 2, Items: []domain.Item{}},
		},
	}
}

func TestRedisSnapshotCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c := NewRedisSnapshotCache(client, time.Minute)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "trip-1"); err != nil || ok {
		t.Fatalf("empty cache Get = ok %v, err %v; want miss", ok, err)
	}

	want := snapshot()
	if err := c.Put(ctx, want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "trip-1")
	if err != nil || !ok {
		t.Fatalf("Get = ok %v, err %v", ok, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("cached snapshot mismatch\ngot:  %+v\nwant: %+v", got, want)
	}

	if ttl := mr.TTL(snapshotKeyPrefix + "trip-1"); ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if _, ok, _ := c.Get(ctx, "trip-1"); ok {
		t.Fatal("snapshot should expire after TTL")
	}
}

func TestRedisSnapshotCacheCorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	if err := mr.Set(snapshotKeyPrefix+"bad", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c := NewRedisSnapshotCache(client, 0)
	if _, _, err := c.Get(context.Background(), "bad"); err == nil {
		t.Fatal("expected parse error for corrupt entry")
	}
}

func TestMemorySnapshotCache(t *testing.T) {
	c := NewMemorySnapshotCache()
	ctx := context.Background()

	it := snapshot()
	if err := c.Put(ctx, it); err != nil {
		t.Fatalf("put: %v", err)
	}
	it.Days[0].Items[0].Name = "mutated"

	got, ok, err := c.Get(ctx, "trip-1")
	if err != nil || !ok {
		t.Fatalf("Get = ok %v, err %v", ok, err)
	}
	if got.Days[0].Items[0].Name != "Fushimi Inari" {
		t.Fatalf("cache shares storage with caller: %q", got.Days[0].Items[0].Name)
	}
}
