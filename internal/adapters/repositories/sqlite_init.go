package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the itinerary schema. The statements are portable between
// SQLite and Postgres so cmd/server and cmd/dbtool share them.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createItinerariesQuery := `
	CREATE TABLE IF NOT EXISTS itineraries (
		itinerary_id TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		day_count INTEGER NOT NULL
	);
	`

	createItemsQuery := `
	CREATE TABLE IF NOT EXISTS itinerary_items (
		item_id TEXT NOT NULL,
		itinerary_id TEXT NOT NULL REFERENCES itineraries(itinerary_id) ON DELETE CASCADE,
		day_number INTEGER NOT NULL,
		position INTEGER NOT NULL,
		backend_id TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		time_slot TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL DEFAULT '',
		end_time TEXT NOT NULL DEFAULT '',
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		duration_hours REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (itinerary_id, item_id)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_itinerary_items_itinerary_day
	ON itinerary_items(itinerary_id, day_number, position);
	`

	statements := []string{
		createItinerariesQuery,
		createItemsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
