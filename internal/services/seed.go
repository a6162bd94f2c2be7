package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
	"itinerary-service/internal/ports"
	"log"
	"os"
	"strings"
)

type seedFile struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Days  []domain.Day `json:"days"`
}

// SeedFromJSON imports the itinerary in the seed file at path unless one with
// the same id is already stored. The seed must carry an id so repeated
// startups do not pile up copies. It reports whether an import happened.
func SeedFromJSON(
	ctx context.Context,
	path string,
	session *EditSession,
	repo ports.ItineraryRepository,
	cache ports.SnapshotCache,
) (_ bool, err error) {
	defer obs.Time(ctx, "itinerary.Seed")(&err)

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("seed itinerary: read %q: %w", path, err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return false, fmt.Errorf("seed itinerary: parse %q: %w", path, err)
	}
	seed.ID = strings.TrimSpace(seed.ID)
	if seed.ID == "" {
		return false, fmt.Errorf("seed itinerary: %q has no id", path)
	}

	_, err = repo.GetItinerary(ctx, seed.ID)
	switch {
	case err == nil:
		log.Printf("seed itinerary already present id=%s", seed.ID)
		return false, nil
	case !errors.Is(err, ports.ErrNotFound):
		return false, fmt.Errorf("seed itinerary: lookup %q: %w", seed.ID, err)
	}

	for di := range seed.Days {
		for ii, item := range seed.Days[di].Items {
			if _, ok := domain.ParseCategory(string(item.Category)); !ok {
				seed.Days[di].Items[ii].Category = domain.CategoryDestination
			}
		}
	}

	req := ImportItineraryRequest{ID: seed.ID, Title: seed.Title, Days: seed.Days}
	if _, err := ImportItinerary(ctx, req, session, repo, cache); err != nil {
		return false, fmt.Errorf("seed itinerary: %w", err)
	}
	return true, nil
}
