package services

import (
	"itinerary-service/internal/domain"
	"strconv"
	"strings"
)

// Per-day capacity and hand-edit duration bounds.
const (
	MaxDestinationsPerDay   = 4
	MaxMealsPerDay          = 3
	MinDestinationMinutes   = 30
	MaxDestinationMinutes   = 240
	FallbackDurationMinutes = 60
)

// CanAdd reports whether one more item of the given category fits in the day.
// Transit gaps are uncapped.
func CanAdd(day domain.Day, category domain.Category) bool {
	switch category {
	case domain.CategoryDestination:
		return day.Count(domain.CategoryDestination) < MaxDestinationsPerDay
	case domain.CategoryMeal:
		return day.Count(domain.CategoryMeal) < MaxMealsPerDay
	default:
		return true
	}
}

// ClampDuration turns a hand-entered duration into minutes.
//
// Unparseable input keeps the previous duration (or FallbackDurationMinutes when
// there was none). Destinations are held to [30,240]; everything else keeps the
// literal value. Rounding to 5 minutes happens later, in RebuildDay.
func ClampDuration(category domain.Category, requested string, previous int) int {
	minutes, ok := parseMinutes(requested)
	if !ok {
		minutes = previous
		if minutes <= 0 {
			minutes = FallbackDurationMinutes
		}
	}

	if category == domain.CategoryDestination {
		minutes = max(MinDestinationMinutes, min(minutes, MaxDestinationMinutes))
	}
	return minutes
}

func parseMinutes(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	// Decimal input truncates toward zero.
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > -1e9 && f < 1e9 {
		return int(f), true
	}
	return 0, false
}

// DefaultDuration is the length, in minutes, assumed for an item of the given
// category when nothing better is known.
func DefaultDuration(category domain.Category) int {
	switch category {
	case domain.CategoryMeal:
		return 60
	case domain.CategoryTransit:
		return 45
	default:
		return 90
	}
}
