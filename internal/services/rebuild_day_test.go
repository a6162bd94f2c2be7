package services

import (
	"fmt"
	"itinerary-service/internal/domain"
	"math/rand"
	"reflect"
	"testing"
)

func TestRebuildDayHonorsLaterAnchor(t *testing.T) {
	items := []domain.Item{
		{ID: "lunch", Category: domain.CategoryMeal, TimeSlot: "14:30:00", Duration: 60},
		{ID: "museum", Category: domain.CategoryDestination, TimeSlot: "08:00:00", Duration: 45},
	}

	got := RebuildDay(items, DefaultDayStart)

	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != "museum" || got[0].TimeSlot != "08:00:00" || got[0].Duration != 45 {
		t.Fatalf("first = %+v, want museum at 08:00:00 for 45m", got[0])
	}
	if got[0].EndTime != "08:45" {
		t.Fatalf("first end = %q, want 08:45", got[0].EndTime)
	}
	if got[1].ID != "lunch" || got[1].TimeSlot != "14:30:00" || got[1].Duration != 60 {
		t.Fatalf("second = %+v, want lunch at 14:30:00 for 60m", got[1])
	}
}

// Starts are times of day, so a cursor pushed past midnight wraps and the
// wrapped item sorts first on the next rebuild.
func TestRebuildDayPastMidnightWraps(t *testing.T) {
	items := []domain.Item{
		{ID: "show", Category: domain.CategoryDestination, TimeSlot: "22:00", Duration: 180},
		{ID: "snack", Category: domain.CategoryMeal, Duration: 60},
	}

	first := RebuildDay(items, DefaultDayStart)
	if first[0].ID != "show" || first[0].TimeSlot != "22:00:00" {
		t.Fatalf("first[0] = %+v, want show at 22:00:00", first[0])
	}
	if first[1].ID != "snack" || first[1].TimeSlot != "01:00:00" {
		t.Fatalf("first[1] = %+v, want snack wrapped to 01:00:00", first[1])
	}

	second := RebuildDay(first, DefaultDayStart)
	if ids(second) != "snack,show" {
		t.Fatalf("second rebuild order = %s, want snack,show", ids(second))
	}
	if second[0].TimeSlot != "01:00:00" || second[1].TimeSlot != "22:00:00" {
		t.Fatalf("second rebuild slots = %q, %q", second[0].TimeSlot, second[1].TimeSlot)
	}
}

func TestRebuildDayRoundsDurationsSequentially(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Category: domain.CategoryDestination, Duration: 63},
		{ID: "b", Category: domain.CategoryDestination, Duration: 2},
		{ID: "c", Category: domain.CategoryDestination, Duration: 87},
	}

	got := RebuildDay(items, DefaultDayStart)

	wantDur := []int{65, 5, 85}
	wantStart := []string{"08:00:00", "09:05:00", "09:10:00"}
	for i := range got {
		if got[i].Duration != wantDur[i] {
			t.Errorf("item %d duration = %d, want %d", i, got[i].Duration, wantDur[i])
		}
		if got[i].TimeSlot != wantStart[i] {
			t.Errorf("item %d start = %q, want %q", i, got[i].TimeSlot, wantStart[i])
		}
	}
	if got[2].EndTime != "10:35" {
		t.Fatalf("last end = %q, want 10:35", got[2].EndTime)
	}
}

func TestRebuildDayDropsTransit(t *testing.T) {
	items := []domain.Item{
		{ID: "bus", Category: domain.CategoryTransit, Duration: 30},
		{ID: "park", Category: domain.CategoryDestination, Duration: 90},
	}

	got := RebuildDay(items, DefaultDayStart)

	if len(got) != 1 || got[0].ID != "park" {
		t.Fatalf("expected only park, got %+v", got)
	}
}

func TestRebuildDayEmptyAndNil(t *testing.T) {
	if got := RebuildDay(nil, DefaultDayStart); got != nil {
		t.Fatalf("nil input should pass through, got %v", got)
	}

	got := RebuildDay([]domain.Item{{Category: domain.CategoryTransit}}, DefaultDayStart)
	if got == nil || len(got) != 0 {
		t.Fatalf("all-transit day should be empty and non-nil, got %#v", got)
	}
}

func TestRebuildDayPushesOverlapForward(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Category: domain.CategoryDestination, TimeSlot: "09:00", Duration: 120},
		{ID: "b", Category: domain.CategoryMeal, TimeSlot: "10:00", Duration: 60},
		{ID: "c", Category: domain.CategoryDestination, Duration: 30},
	}

	got := RebuildDay(items, DefaultDayStart)

	want := []string{"09:00:00", "11:00:00", "12:00:00"}
	for i, w := range want {
		if got[i].TimeSlot != w {
			t.Errorf("item %d (%s) start = %q, want %q", i, got[i].ID, got[i].TimeSlot, w)
		}
	}
}

func TestRebuildDayUntimedItemsGoLastInOrder(t *testing.T) {
	items := []domain.Item{
		{ID: "x", Category: domain.CategoryDestination, Duration: 30},
		{ID: "y", Category: domain.CategoryDestination, TimeSlot: "not a time", Duration: 30},
		{ID: "z", Category: domain.CategoryDestination, TimeSlot: "10:00-11:00", Duration: 60},
	}

	got := RebuildDay(items, DefaultDayStart)

	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	if !reflect.DeepEqual(ids, []string{"z", "x", "y"}) {
		t.Fatalf("order = %v, want [z x y]", ids)
	}
	if got[1].TimeSlot != "11:00:00" || got[2].TimeSlot != "11:30:00" {
		t.Fatalf("untimed starts = %q, %q", got[1].TimeSlot, got[2].TimeSlot)
	}
}

func TestRebuildDayDoesNotMutateInput(t *testing.T) {
	items := []domain.Item{
		{ID: "b", Category: domain.CategoryMeal, TimeSlot: "12:00", Duration: 61},
		{ID: "a", Category: domain.CategoryDestination, TimeSlot: "09:00", Duration: 33},
	}
	before := append([]domain.Item(nil), items...)

	_ = RebuildDay(items, DefaultDayStart)

	if !reflect.DeepEqual(items, before) {
		t.Fatalf("input mutated: %+v", items)
	}
}

func TestRebuildDayMissingDurationUsesCategoryDefault(t *testing.T) {
	got := RebuildDay([]domain.Item{{Category: domain.CategoryMeal}}, DefaultDayStart)
	if got[0].Duration != 60 {
		t.Fatalf("meal default duration = %d, want 60", got[0].Duration)
	}
}

func randomDay(r *rand.Rand) []domain.Item {
	categories := []domain.Category{domain.CategoryDestination, domain.CategoryMeal, domain.CategoryTransit}
	n := r.Intn(8)
	items := make([]domain.Item, 0, n)
	for i := 0; i < n; i++ {
		item := domain.Item{
			ID:       fmt.Sprintf("item-%d", i),
			Category: categories[r.Intn(len(categories))],
			Duration: r.Intn(90) - 5,
		}
		switch r.Intn(4) {
		case 0:
			item.TimeSlot = domain.FormatClockSeconds((6 + r.Intn(6)) * domain.HourMillis)
		case 1:
			start := (6 + r.Intn(6)) * domain.HourMillis
			item.TimeSlot = domain.FormatRange(start, start+domain.HourMillis)
		case 2:
			item.TimeSlot = "??"
		}
		items = append(items, item)
	}
	return items
}

func TestRebuildDayProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 500; round++ {
		items := randomDay(r)
		got := RebuildDay(items, DefaultDayStart)

		prevEnd := -1
		for i, item := range got {
			if item.Category == domain.CategoryTransit {
				t.Fatalf("round %d: transit item %s survived rebuild", round, item.ID)
			}
			if item.Duration < 5 || item.Duration%5 != 0 {
				t.Fatalf("round %d: item %d duration %d not a positive multiple of 5", round, i, item.Duration)
			}
			start, ok := domain.ParseClock(item.TimeSlot)
			if !ok {
				t.Fatalf("round %d: item %d has unparseable slot %q", round, i, item.TimeSlot)
			}
			if start < prevEnd {
				t.Fatalf("round %d: item %d starts at %q before previous end", round, i, item.TimeSlot)
			}
			prevEnd = start + item.Duration*domain.MinuteMillis
		}

		again := RebuildDay(got, DefaultDayStart)
		if !reflect.DeepEqual(got, again) {
			t.Fatalf("round %d: rebuild not idempotent\nfirst:  %+v\nsecond: %+v", round, got, again)
		}
	}
}
