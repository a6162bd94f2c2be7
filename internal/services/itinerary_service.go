package services

import (
	"context"
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
	"itinerary-service/internal/ports"
	"log"
	"strings"
)

// ErrItineraryExists refuses an import whose id is already stored.
var ErrItineraryExists = errors.New("itinerary already exists")

type ImportItineraryRequest struct {
	ID    string
	Title string
	Days  []domain.Day
}

// ImportItinerary takes a freshly generated itinerary, assigns identities and
// day numbers, allocates time slots in the generator's order and stores it.
// Every item gets a new id; an id sent by the generator is kept as BackendID.
// An explicit itinerary id that is already stored is refused with
// ErrItineraryExists. cache may be nil.
func ImportItinerary(
	ctx context.Context,
	req ImportItineraryRequest,
	session *EditSession,
	repo ports.ItineraryRepository,
	cache ports.SnapshotCache,
) (_ domain.Itinerary, err error) {
	defer obs.Time(ctx, "itinerary.Import")(&err)

	if len(req.Days) == 0 {
		return domain.Itinerary{}, errors.New("import itinerary: at least one day is required")
	}

	it := domain.Itinerary{
		ID:    strings.TrimSpace(req.ID),
		Title: req.Title,
		Days:  make([]domain.Day, 0, len(req.Days)),
	}
	if it.ID == "" {
		it.ID = session.NewID()
	} else {
		_, err := repo.GetItinerary(ctx, it.ID)
		switch {
		case err == nil:
			return domain.Itinerary{}, fmt.Errorf("import itinerary: %q: %w", it.ID, ErrItineraryExists)
		case !errors.Is(err, ports.ErrNotFound):
			return domain.Itinerary{}, fmt.Errorf("import itinerary: lookup %q: %w", it.ID, err)
		}
	}

	// Day numbers follow position; whatever the generator numbered them is ignored.
	for i, d := range req.Days {
		day := domain.Day{Number: i + 1, Items: make([]domain.Item, 0, len(d.Items))}
		for _, item := range d.Items {
			if item.BackendID == "" {
				item.BackendID = strings.TrimSpace(item.ID)
			}
			item.ID = session.NewID()
			item.Day = day.Number
			day.Items = append(day.Items, item)
		}
		it.Days = append(it.Days, day)
	}

	it = AllocateItinerary(it, session.DefaultStart)

	if err := repo.SaveItinerary(ctx, it); err != nil {
		return domain.Itinerary{}, fmt.Errorf("import itinerary: save %q: %w", it.ID, err)
	}
	putCache(ctx, cache, it)

	return it, nil
}

// LoadItinerary reads the latest snapshot, preferring the cache.
func LoadItinerary(
	ctx context.Context,
	id string,
	repo ports.ItineraryRepository,
	cache ports.SnapshotCache,
) (_ domain.Itinerary, err error) {
	defer obs.Time(ctx, "itinerary.Load")(&err)

	if cache != nil {
		it, ok, err := cache.Get(ctx, id)
		if err != nil {
			log.Printf("req_id=%s snapshot cache get failed id=%s err=%v", obs.RequestID(ctx), id, err)
		} else if ok {
			return it, nil
		}
	}

	it, err := repo.GetItinerary(ctx, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("load itinerary: %q: %w", id, err)
	}
	putCache(ctx, cache, it)

	return it, nil
}

// ApplyEdit loads an itinerary, applies one operation and persists the result.
// Refusals (capacity, last day, bad index...) are returned unwrapped enough for
// errors.Is against the services sentinels; nothing is saved in that case.
func ApplyEdit(
	ctx context.Context,
	id string,
	op Operation,
	session *EditSession,
	repo ports.ItineraryRepository,
	cache ports.SnapshotCache,
) (_ domain.Itinerary, err error) {
	defer obs.Time(ctx, "itinerary.ApplyEdit")(&err)

	current, err := LoadItinerary(ctx, id, repo, cache)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("apply edit: %w", err)
	}

	next, err := session.Apply(current, op)
	if err != nil {
		return current, fmt.Errorf("apply edit: %s: %w", op.Kind(), err)
	}

	if err := repo.SaveItinerary(ctx, next); err != nil {
		return current, fmt.Errorf("apply edit: save %q: %w", id, err)
	}
	putCache(ctx, cache, next)

	return next, nil
}

// putCache refreshes the snapshot cache; the repository stays the source of
// truth, so failures are only logged.
func putCache(ctx context.Context, cache ports.SnapshotCache, it domain.Itinerary) {
	if cache == nil {
		return
	}
	if err := cache.Put(ctx, it); err != nil {
		log.Printf("req_id=%s snapshot cache put failed id=%s err=%v", obs.RequestID(ctx), it.ID, err)
	}
}
