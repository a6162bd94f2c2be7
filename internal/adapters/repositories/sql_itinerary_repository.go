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

// SQLItineraryRepository is the Postgres (pgx stdlib driver) implementation of
// the ItineraryRepository port.
type SQLItineraryRepository struct {
	DB *sql.DB
}

func NewSQLItineraryRepository(db *sql.DB) *SQLItineraryRepository {
	return &SQLItineraryRepository{DB: db}
}

func (s *SQLItineraryRepository) GetItinerary(ctx context.Context, id string) (_ domain.Itinerary, err error) {
	defer obs.Time(ctx, "itinerary.sql.Get")(&err)

	if s.DB == nil {
		return domain.Itinerary{}, errors.New("sql itinerary repository: db is nil")
	}

	var title string
	var dayCount int
	err = s.DB.QueryRowContext(ctx, `
	SELECT title, day_count
	FROM itineraries
	WHERE itinerary_id = $1;
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
	WHERE itinerary_id = $1
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

func (s *SQLItineraryRepository) SaveItinerary(ctx context.Context, it domain.Itinerary) (err error) {
	defer obs.Time(ctx, "itinerary.sql.Save")(&err)

	if s.DB == nil {
		return errors.New("sql itinerary repository: db is nil")
	}
	if it.ID == "" {
		return errors.New("save itinerary: id must not be empty")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save itinerary: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO itineraries (itinerary_id, title, day_count)
	VALUES ($1, $2, $3)
	ON CONFLICT (itinerary_id) DO UPDATE
	SET title = EXCLUDED.title,
		day_count = EXCLUDED.day_count;
	`, it.ID, it.Title, len(it.Days)); err != nil {
		return fmt.Errorf("save itinerary %q: upsert itinerary: %w", it.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM itinerary_items WHERE itinerary_id = $1;`, it.ID); err != nil {
		return fmt.Errorf("save itinerary %q: clear items: %w", it.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO itinerary_items (
		item_id, itinerary_id, day_number, position, backend_id, category, name,
		time_slot, start_time, end_time, duration_minutes, duration_hours
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`)
	if err != nil {
		return fmt.Errorf("save itinerary %q: db prepare: %w", it.ID, err)
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
		return fmt.Errorf("save itinerary %q: commit: %w", it.ID, err)
	}

	return nil
}
