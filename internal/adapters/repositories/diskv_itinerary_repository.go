package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/ports"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvItineraryRepository stores each itinerary as one JSON file under a
// base directory. The planner CLI uses it as its local working copy.
type DiskvItineraryRepository struct {
	d *diskv.Diskv
}

func NewDiskvItineraryRepository(basePath string) *DiskvItineraryRepository {
	return &DiskvItineraryRepository{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024,
	})}
}

func validKey(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("id must not be empty")
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("id %q is not a valid file name", id)
	}
	return nil
}

func (r *DiskvItineraryRepository) GetItinerary(ctx context.Context, id string) (domain.Itinerary, error) {
	if err := validKey(id); err != nil {
		return domain.Itinerary{}, fmt.Errorf("get itinerary: %w", err)
	}
	if !r.d.Has(id) {
		return domain.Itinerary{}, fmt.Errorf("get itinerary %q: %w", id, ports.ErrNotFound)
	}

	data, err := r.d.Read(id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("get itinerary %q: read: %w", id, err)
	}

	var it domain.Itinerary
	if err := json.Unmarshal(data, &it); err != nil {
		return domain.Itinerary{}, fmt.Errorf("get itinerary %q: parse json: %w", id, err)
	}
	return it, nil
}

func (r *DiskvItineraryRepository) SaveItinerary(ctx context.Context, it domain.Itinerary) error {
	if err := validKey(it.ID); err != nil {
		return fmt.Errorf("save itinerary: %w", err)
	}

	data, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		return fmt.Errorf("save itinerary %q: encode json: %w", it.ID, err)
	}
	if err := r.d.Write(it.ID, data); err != nil {
		return fmt.Errorf("save itinerary %q: write: %w", it.ID, err)
	}
	return nil
}

// Keys lists stored itinerary ids in sorted order.
func (r *DiskvItineraryRepository) Keys(ctx context.Context) []string {
	var keys []string
	for k := range r.d.Keys(ctx.Done()) {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
