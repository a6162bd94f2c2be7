package domain

import "strings"

// Category is the closed set of schedulable item kinds.
type Category string

const (
	CategoryDestination Category = "destination"
	CategoryMeal        Category = "meal"
	CategoryTransit     Category = "transit"
)

// ParseCategory maps a loosely formatted category name onto a Category.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryDestination:
		return CategoryDestination, true
	case CategoryMeal:
		return CategoryMeal, true
	case CategoryTransit:
		return CategoryTransit, true
	}
	return "", false
}

// Represents one scheduled activity within a day.
// ID is assigned once when the item enters the system and is never reused;
// BackendID is whatever key the persistence side handed out, if any.
//
// TimeSlot is either empty, a single instant ("HH:MM" or "HH:MM:SS"), or a
// rendered range ("HH:MM-HH:MM"), depending on where the item came from.
// StartTime/EndTime carry upstream hints on import and display values after
// scheduling. Duration is in minutes (0 = unknown); Hours is an optional
// upstream duration in hours (0 = absent).
type Item struct {
	ID        string   `json:"id"`
	BackendID string   `json:"backend_id,omitempty"`
	Category  Category `json:"category"`
	Name      string   `json:"name"`
	TimeSlot  string   `json:"time_slot,omitempty"`
	StartTime string   `json:"start_time,omitempty"`
	EndTime   string   `json:"end_time,omitempty"`
	Duration  int      `json:"duration"`
	Hours     float64  `json:"duration_hours,omitempty"`
	Day       int      `json:"day"`
}

// One calendar day of a trip. Number is 1-based and dense across the trip.
type Day struct {
	Number int    `json:"day_number"`
	Items  []Item `json:"items"`
}

// An immutable-by-convention snapshot of a whole trip.
type Itinerary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Days  []Day  `json:"days"`
}

// Clone returns a deep copy so callers can derive a new snapshot without
// touching the one they were given.
func (it Itinerary) Clone() Itinerary {
	out := Itinerary{ID: it.ID, Title: it.Title}
	if it.Days == nil {
		return out
	}

	out.Days = make([]Day, len(it.Days))
	for i, d := range it.Days {
		out.Days[i] = d.Clone()
	}
	return out
}

// Clone returns a copy of the day with its own item slice.
func (d Day) Clone() Day {
	out := Day{Number: d.Number}
	if d.Items != nil {
		out.Items = append(make([]Item, 0, len(d.Items)), d.Items...)
	}
	return out
}

// DayIndex returns the slice index of the day with the given number, or -1.
func (it Itinerary) DayIndex(number int) int {
	for i, d := range it.Days {
		if d.Number == number {
			return i
		}
	}
	return -1
}

// FindItem locates an item by identity across all days.
func (it Itinerary) FindItem(id string) (dayIdx, itemIdx int, ok bool) {
	for di, d := range it.Days {
		for ii, item := range d.Items {
			if item.ID == id {
				return di, ii, true
			}
		}
	}
	return -1, -1, false
}

// Count returns how many items in the day carry the given category.
func (d Day) Count(c Category) int {
	n := 0
	for _, item := range d.Items {
		if item.Category == c {
			n++
		}
	}
	return n
}
