package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
	"itinerary-service/internal/ports"
)

// SQLite-backed implementation of the ItineraryRepository port.
type SqliteItineraryRepository struct{ DB *sql.DB }

func NewSqliteItineraryRepository(db *sql.DB) *SqliteItineraryRepository {
	return &SqliteItineraryRepository{DB: db}
}

// Return the stored itinerary with its days and items in position order.
func (s *SqliteItineraryRepository) GetItinerary(ctx context.Context, id string) (_ domain.Itinerary, err error) {
	defer obs.Time(ctx, "itinerary.sqlite.Get")(&err)

	if s.DB == nil {
		return domain.Itinerary{}, errors.New("sqlite itinerary repository: DB is nil")
	}

	var title string
	var dayCount int
	err = s.DB.QueryRowContext(ctx, `
	SELECT title, day_count
	FROM itineraries
	WHERE itinerary_id = ?;
	`, id).Scan(&title, &dayCount)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Itinerary{}, fmt.Errorf("get itinerary %q: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("get itinerary %q: query itineraries table: %w", id, err)
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT`+selectItemsColumns+`
	FROM itinerary_items
	WHERE itinerary_id = ?
	ORDER BY day_number, position;
	`, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("get itinerary %q: query itinerary_items table: %w", id, err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("get itinerary %q: %w", id, err)
	}

	it, err := assembleItinerary(id, title, dayCount, items)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("get itinerary %q: %w", id, err)
	}
	return it, nil
}

// Replace the itinerary row and all of its items in one transaction.
func (s *SqliteItineraryRepository) SaveItinerary(ctx context.Context, it domain.Itinerary) (err error) {
	defer obs.Time(ctx, "itinerary.sqlite.Save")(&err)

	if s.DB == nil {
		return errors.New("sqlite itinerary repository: DB is nil")
	}
	if it.ID == "" {
		return errors.New("save itinerary: id must not be empty")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save itinerary: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO itineraries (
		itinerary_id,
		title,
		day_count
	)
	VALUES (?, ?, ?)
	ON CONFLICT (itinerary_id) DO UPDATE
	SET title = excluded.title,
		day_count = excluded.day_count;
	`, it.ID, it.Title, len(it.Days)); err != nil {
		return fmt.Errorf("save itinerary %q: upsert itinerary: %w", it.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM itinerary_items WHERE itinerary_id = ?;`, it.ID); err != nil {
		return fmt.Errorf("save itinerary %q: clear items: %w", it.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO itinerary_items (
		item_id,
		itinerary_id,
		day_number,
		position,
		backend_id,
		category,
		name,
		time_slot,
		start_time,
		end_time,
		duration_minutes,
		duration_hours
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("save itinerary %q: prepare insert: %w", it.ID, err)
	}
	defer stmt.Close()

	for _, day := range it.Days {
		for pos, item := range day.Items {
			if _, err := stmt.ExecContext(ctx,
				item.ID, it.ID, day.Number, pos, item.BackendID, string(item.Category), item.Name,
				item.TimeSlot, item.StartTime, item.EndTime, item.Duration, item.Hours,
			); err != nil {
				return fmt.Errorf("save itinerary %q: insert item_id=%q: %w", it.ID, item.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save itinerary %q: commit tx: %w", it.ID, err)
	}

	return nil
}
