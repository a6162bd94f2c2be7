package repositories

import (
	"database/sql"
	"fmt"
	"itinerary-service/internal/domain"
)

const selectItemsColumns = `
	item_id,
	day_number,
	backend_id,
	category,
	name,
	time_slot,
	start_time,
	end_time,
	duration_minutes,
	duration_hours
`

// scanItems reads rows selected with selectItemsColumns, ordered by day and position.
func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	items := make([]domain.Item, 0, 16)
	for rows.Next() {
		var item domain.Item
		var category string
		err := rows.Scan(
			&item.ID,
			&item.Day,
			&item.BackendID,
			&category,
			&item.Name,
			&item.TimeSlot,
			&item.StartTime,
			&item.EndTime,
			&item.Duration,
			&item.Hours,
		)
		if err != nil {
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		item.Category = domain.Category(category)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("item row iteration: %w", err)
	}
	return items, nil
}

// assembleItinerary groups items into dayCount dense days.
func assembleItinerary(id, title string, dayCount int, items []domain.Item) (domain.Itinerary, error) {
	it := domain.Itinerary{ID: id, Title: title, Days: make([]domain.Day, dayCount)}
	for i := range it.Days {
		it.Days[i] = domain.Day{Number: i + 1, Items: []domain.Item{}}
	}

	for _, item := range items {
		if item.Day < 1 || item.Day > dayCount {
			return domain.Itinerary{}, fmt.Errorf("item %q references day %d of %d", item.ID, item.Day, dayCount)
		}
		it.Days[item.Day-1].Items = append(it.Days[item.Day-1].Items, item)
	}
	return it, nil
}
