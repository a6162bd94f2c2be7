package services

import (
	"cmp"
	"itinerary-service/internal/domain"
	"math"
	"slices"
)

// DefaultDayStart is where a day's timetable begins when nothing anchors it (08:00:00).
const DefaultDayStart = 8 * domain.HourMillis

type rebuildCandidate struct {
	item     domain.Item
	start    int
	hasStart bool
}

// RebuildDay canonicalizes one day's items into a non-overlapping timetable.
//
// Transit items are dropped. The rest are ordered by the start they currently
// claim (items without a usable time go last, keeping their relative order) and
// walked with a cursor: an item keeps its own start when it does not collide
// with the previous item, otherwise it is pushed to the cursor. Durations are
// rounded to the nearest 5 minutes (minimum 5).
//
// The result is idempotent for days that end before midnight: rebuilding a
// rebuilt day returns the same day. Starts pushed past 24:00 wrap.
// A nil slice passes through as nil.
func RebuildDay(items []domain.Item, defaultStart int) []domain.Item {
	if items == nil {
		return nil
	}

	candidates := make([]rebuildCandidate, 0, len(items))
	for _, item := range items {
		if item.Category == domain.CategoryTransit {
			continue
		}

		start, ok := domain.EffectiveStart(item)
		if !ok {
			start = domain.DayMillis
		}
		candidates = append(candidates, rebuildCandidate{item: item, start: start, hasStart: ok})
	}

	slices.SortStableFunc(candidates, func(a, b rebuildCandidate) int {
		return cmp.Compare(a.start, b.start)
	})

	out := make([]domain.Item, 0, len(candidates))
	cursor := defaultStart

	for i, c := range candidates {
		start := cursor
		// The first item anchors the day; later ones only when they leave no overlap.
		if c.hasStart && (i == 0 || c.start >= cursor) {
			start = c.start
		}

		duration := roundDuration(rebuildDuration(c.item))
		end := start + duration*domain.MinuteMillis

		item := c.item
		item.TimeSlot = domain.FormatClockSeconds(start)
		item.StartTime = domain.FormatClock(start)
		item.EndTime = domain.FormatClock(end)
		item.Duration = duration
		item.Hours = 0

		out = append(out, item)
		cursor = end
	}

	return out
}

// rebuildDuration prefers the edited minutes over any upstream hours hint.
func rebuildDuration(item domain.Item) int {
	if item.Duration > 0 {
		return item.Duration
	}
	if item.Hours > 0 {
		return int(math.Round(item.Hours * 60))
	}
	return DefaultDuration(item.Category)
}

// MinSlotMinutes is the shortest slot a rebuilt day holds.
const MinSlotMinutes = 5

// roundDuration rounds to the nearest multiple of 5 minutes, never below MinSlotMinutes.
func roundDuration(minutes int) int {
	rounded := (minutes + 2) / 5 * 5
	if rounded < MinSlotMinutes {
		return MinSlotMinutes
	}
	return rounded
}

// RebuildItinerary rebuilds every day of the itinerary into a new snapshot.
func RebuildItinerary(it domain.Itinerary, defaultStart int) domain.Itinerary {
	out := it.Clone()
	for i := range out.Days {
		out.Days[i].Items = RebuildDay(out.Days[i].Items, defaultStart)
	}
	return out
}
