package services

import (
	"itinerary-service/internal/domain"
	"math"
)

// AllocateDay assigns a "HH:MM-HH:MM" slot to every item of a freshly imported
// day without reordering it. The generator's order is intentional and kept.
//
// Items are resolved in priority order:
//   - a slot that is already a full range is kept verbatim (cursor untouched)
//   - explicit start and end are used as given
//   - a start alone gets start+duration as its end
//   - anything else is placed at the cursor
//
// Explicit times push the cursor forward but never pull it back.
func AllocateDay(items []domain.Item, defaultStart int) []domain.Item {
	if items == nil {
		return nil
	}

	out := make([]domain.Item, 0, len(items))
	cursor := defaultStart

	for _, item := range items {
		duration := allocationDuration(item)
		if item.Hours > 0 {
			item.Duration = duration
		}

		var start, end int
		if rs, re, ok := domain.ParseRange(item.TimeSlot); ok {
			start, end = rs, re
			item.StartTime = domain.FormatClock(start)
			item.EndTime = domain.FormatClock(end)
			item.Duration = filledDuration(item.Duration, start, end, duration)
			out = append(out, item)
			continue
		}

		hintStart, hasStart := startHint(item)
		hintEnd, hasEnd := domain.ParseClock(item.EndTime)

		switch {
		case hasStart && hasEnd:
			start, end = hintStart, hintEnd
			cursor = max(cursor, end)
		case hasStart:
			start = hintStart
			end = start + duration*domain.MinuteMillis
			cursor = max(cursor, end)
		default:
			start = cursor
			end = start + duration*domain.MinuteMillis
			cursor = end
		}

		item.TimeSlot = domain.FormatRange(start, end)
		item.StartTime = domain.FormatClock(start)
		item.EndTime = domain.FormatClock(end)
		item.Duration = filledDuration(item.Duration, start, end, duration)
		out = append(out, item)
	}

	return out
}

// startHint reads the explicit start of an imported item: the StartTime field,
// or a TimeSlot holding a single instant.
func startHint(item domain.Item) (int, bool) {
	if start, ok := domain.ParseClock(item.StartTime); ok {
		return start, true
	}
	return domain.ParseClock(item.TimeSlot)
}

// allocationDuration resolves minutes as hours*60, then minutes, then the category default.
func allocationDuration(item domain.Item) int {
	if item.Hours > 0 {
		return int(math.Round(item.Hours * 60))
	}
	if item.Duration > 0 {
		return item.Duration
	}
	return DefaultDuration(item.Category)
}

// filledDuration keeps a known duration, otherwise derives it from the slot.
func filledDuration(current, start, end, fallback int) int {
	if current > 0 {
		return current
	}
	if end > start {
		return (end - start) / domain.MinuteMillis
	}
	return fallback
}

// AllocateItinerary runs AllocateDay over every day; each day starts its own cursor.
func AllocateItinerary(it domain.Itinerary, defaultStart int) domain.Itinerary {
	out := it.Clone()
	for i := range out.Days {
		out.Days[i].Items = AllocateDay(out.Days[i].Items, defaultStart)
	}
	return out
}
