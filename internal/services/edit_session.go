package services

import (
	"errors"
	"fmt"
	"itinerary-service/internal/domain"

	"github.com/google/uuid"
)

// Refusals reported by EditSession.Apply. The itinerary comes back unchanged.
var (
	ErrCapacityReached  = errors.New("day capacity reached")
	ErrLastDay          = errors.New("cannot delete the last remaining day")
	ErrDayNotFound      = errors.New("day not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrUnknownOperation = errors.New("unknown operation")
)

// EditSession applies editing operations to itinerary snapshots.
// It holds no itinerary state itself: every call maps one snapshot to the next.
type EditSession struct {
	DefaultStart int
	NewID        func() string
}

func NewEditSession() *EditSession {
	return &EditSession{
		DefaultStart: DefaultDayStart,
		NewID:        uuid.NewString,
	}
}

// Apply returns the itinerary that results from op. Every day the operation
// touches is rebuilt before it is returned. On refusal the input itinerary is
// returned as-is together with one of the sentinel errors above.
func (s *EditSession) Apply(it domain.Itinerary, op Operation) (domain.Itinerary, error) {
	next := it.Clone()

	var err error
	switch op := op.(type) {
	case ReorderItems:
		err = s.reorder(&next, op)
	case MoveItem:
		err = s.move(&next, op)
	case EditItem:
		err = s.edit(&next, op)
	case AddItem:
		err = s.addItem(&next, op)
	case RemoveItem:
		err = s.removeItem(&next, op)
	case AddDay:
		next.Days = append(next.Days, domain.Day{Number: len(next.Days) + 1, Items: []domain.Item{}})
	case DeleteDay:
		err = deleteDay(&next, op)
	default:
		err = fmt.Errorf("apply %T: %w", op, ErrUnknownOperation)
	}

	if err != nil {
		return it, err
	}
	return next, nil
}

func (s *EditSession) reorder(it *domain.Itinerary, op ReorderItems) error {
	di := it.DayIndex(op.Day)
	if di < 0 {
		return fmt.Errorf("reorder: day %d: %w", op.Day, ErrDayNotFound)
	}

	items := it.Days[di].Items
	if !inRange(op.From, len(items)) || !inRange(op.To, len(items)) {
		return fmt.Errorf("reorder: day %d from=%d to=%d: %w", op.Day, op.From, op.To, ErrIndexOutOfRange)
	}

	starts := positionStarts(items)
	moved := restampPositions(Reorder(items, op.From, op.To), starts)
	it.Days[di].Items = RebuildDay(moved, s.DefaultStart)
	return nil
}

func (s *EditSession) move(it *domain.Itinerary, op MoveItem) error {
	if op.FromDay == op.ToDay {
		return s.reorder(it, ReorderItems{Day: op.FromDay, From: op.FromIndex, To: op.ToIndex})
	}

	src := it.DayIndex(op.FromDay)
	if src < 0 {
		return fmt.Errorf("move: source day %d: %w", op.FromDay, ErrDayNotFound)
	}
	dst := it.DayIndex(op.ToDay)
	if dst < 0 {
		return fmt.Errorf("move: destination day %d: %w", op.ToDay, ErrDayNotFound)
	}

	source, dest := it.Days[src].Items, it.Days[dst].Items
	if !inRange(op.FromIndex, len(source)) || op.ToIndex < 0 || op.ToIndex > len(dest) {
		return fmt.Errorf("move: from_index=%d to_index=%d: %w", op.FromIndex, op.ToIndex, ErrIndexOutOfRange)
	}

	starts := positionStarts(dest)
	newSource, newDest := MoveBetweenDays(source, dest, op.FromIndex, op.ToIndex, op.ToDay)

	it.Days[src].Items = RebuildDay(newSource, s.DefaultStart)
	it.Days[dst].Items = RebuildDay(restampPositions(newDest, starts), s.DefaultStart)
	return nil
}

func (s *EditSession) edit(it *domain.Itinerary, op EditItem) error {
	di, ii, ok := it.FindItem(op.ItemID)
	if !ok {
		return fmt.Errorf("edit: item %q: %w", op.ItemID, ErrItemNotFound)
	}

	item := &it.Days[di].Items[ii]
	if op.Category != nil {
		item.Category = *op.Category
	}
	if op.Name != nil {
		item.Name = *op.Name
	}
	if op.TimeSlot != nil {
		item.TimeSlot = *op.TimeSlot
		item.StartTime = ""
		item.EndTime = ""
	}
	if op.Duration != nil {
		// A typed 0 is a very short slot, not an unknown length.
		item.Duration = max(ClampDuration(item.Category, *op.Duration, item.Duration), MinSlotMinutes)
		item.Hours = 0
	}

	it.Days[di].Items = RebuildDay(it.Days[di].Items, s.DefaultStart)
	return nil
}

func (s *EditSession) addItem(it *domain.Itinerary, op AddItem) error {
	di := it.DayIndex(op.Day)
	if di < 0 {
		return fmt.Errorf("add item: day %d: %w", op.Day, ErrDayNotFound)
	}

	day := it.Days[di]
	if !CanAdd(day, op.Category) {
		return fmt.Errorf("add item: day %d %s: %w", op.Day, op.Category, ErrCapacityReached)
	}

	item := domain.Item{
		ID:       s.NewID(),
		Category: op.Category,
		Name:     op.Name,
		Duration: DefaultDuration(op.Category),
		Day:      day.Number,
	}
	it.Days[di].Items = RebuildDay(append(day.Items, item), s.DefaultStart)
	return nil
}

// removeItem rebuilds every day, not just the one that lost the item, so the
// whole trip is canonical when it is persisted.
func (s *EditSession) removeItem(it *domain.Itinerary, op RemoveItem) error {
	di, ii, ok := it.FindItem(op.ItemID)
	if !ok {
		return fmt.Errorf("remove item: item %q: %w", op.ItemID, ErrItemNotFound)
	}

	items := it.Days[di].Items
	it.Days[di].Items = append(items[:ii:ii], items[ii+1:]...)

	for i := range it.Days {
		it.Days[i].Items = RebuildDay(it.Days[i].Items, s.DefaultStart)
	}
	return nil
}

func deleteDay(it *domain.Itinerary, op DeleteDay) error {
	di := it.DayIndex(op.Day)
	if di < 0 {
		return fmt.Errorf("delete day: day %d: %w", op.Day, ErrDayNotFound)
	}
	if len(it.Days) <= 1 {
		return fmt.Errorf("delete day: day %d: %w", op.Day, ErrLastDay)
	}

	it.Days = append(it.Days[:di:di], it.Days[di+1:]...)
	for i := range it.Days {
		number := i + 1
		it.Days[i].Number = number
		for j := range it.Days[i].Items {
			it.Days[i].Items[j].Day = number
		}
	}
	return nil
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}

type positionStart struct {
	start int
	ok    bool
}

// positionStarts records the start each position of a day currently holds.
func positionStarts(items []domain.Item) []positionStart {
	out := make([]positionStart, len(items))
	for i, item := range items {
		start, ok := domain.EffectiveStart(item)
		out[i] = positionStart{start: start, ok: ok}
	}
	return out
}

// restampPositions gives the item now at position i the start that position
// held before the drag, so RebuildDay's time ordering keeps the dragged order.
// Positions past the old length get no time and fall in at the end.
func restampPositions(items []domain.Item, starts []positionStart) []domain.Item {
	out := make([]domain.Item, len(items))
	for i, item := range items {
		item.StartTime = ""
		item.EndTime = ""
		item.TimeSlot = ""
		if i < len(starts) && starts[i].ok {
			item.TimeSlot = domain.FormatClockSeconds(starts[i].start)
		}
		out[i] = item
	}
	return out
}
