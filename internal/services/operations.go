package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
)

// Operation is one edit applied by EditSession.Apply.
type Operation interface {
	Kind() string
}

// Drag within a day.
type ReorderItems struct {
	Day  int
	From int
	To   int
}

// Drag from one day into another (or the same) day.
type MoveItem struct {
	FromDay   int
	ToDay     int
	FromIndex int
	ToIndex   int
}

// Field edit on one item; nil fields are left alone.
// Duration is the raw user input and goes through ClampDuration.
type EditItem struct {
	ItemID   string
	Name     *string
	TimeSlot *string
	Duration *string
	Category *domain.Category
}

type AddItem struct {
	Day      int
	Category domain.Category
	Name     string
}

type RemoveItem struct {
	ItemID string
}

type AddDay struct{}

type DeleteDay struct {
	Day int
}

func (ReorderItems) Kind() string { return "reorder" }
func (MoveItem) Kind() string     { return "move" }
func (EditItem) Kind() string     { return "edit" }
func (AddItem) Kind() string      { return "add_item" }
func (RemoveItem) Kind() string   { return "remove_item" }
func (AddDay) Kind() string       { return "add_day" }
func (DeleteDay) Kind() string    { return "delete_day" }

var ErrInvalidOperation = errors.New("invalid operation")

type operationEnvelope struct {
	Type      string          `json:"type"`
	Day       int             `json:"day"`
	From      int             `json:"from"`
	To        int             `json:"to"`
	FromDay   int             `json:"from_day"`
	ToDay     int             `json:"to_day"`
	FromIndex int             `json:"from_index"`
	ToIndex   int             `json:"to_index"`
	ItemID    string          `json:"item_id"`
	Name      *string         `json:"name"`
	TimeSlot  *string         `json:"time_slot"`
	Duration  json.RawMessage `json:"duration"`
	Category  string          `json:"category"`
}

// DecodeOperation reads a JSON operation such as
//
//	{"type":"move","from_day":1,"to_day":2,"from_index":0,"to_index":1}
func DecodeOperation(data []byte) (Operation, error) {
	var env operationEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode operation: %w: %v", ErrInvalidOperation, err)
	}

	switch env.Type {
	case "reorder":
		return ReorderItems{Day: env.Day, From: env.From, To: env.To}, nil
	case "move":
		return MoveItem{FromDay: env.FromDay, ToDay: env.ToDay, FromIndex: env.FromIndex, ToIndex: env.ToIndex}, nil
	case "edit":
		if env.ItemID == "" {
			return nil, fmt.Errorf("decode operation: edit: %w: item_id is required", ErrInvalidOperation)
		}
		op := EditItem{ItemID: env.ItemID, Name: env.Name, TimeSlot: env.TimeSlot}
		if d, ok := rawDuration(env.Duration); ok {
			op.Duration = &d
		}
		if env.Category != "" {
			c, ok := domain.ParseCategory(env.Category)
			if !ok {
				return nil, fmt.Errorf("decode operation: edit: %w: unknown category %q", ErrInvalidOperation, env.Category)
			}
			op.Category = &c
		}
		return op, nil
	case "add_item":
		c, ok := domain.ParseCategory(env.Category)
		if !ok {
			return nil, fmt.Errorf("decode operation: add_item: %w: unknown category %q", ErrInvalidOperation, env.Category)
		}
		name := ""
		if env.Name != nil {
			name = *env.Name
		}
		return AddItem{Day: env.Day, Category: c, Name: name}, nil
	case "remove_item":
		if env.ItemID == "" {
			return nil, fmt.Errorf("decode operation: remove_item: %w: item_id is required", ErrInvalidOperation)
		}
		return RemoveItem{ItemID: env.ItemID}, nil
	case "add_day":
		return AddDay{}, nil
	case "delete_day":
		return DeleteDay{Day: env.Day}, nil
	}

	return nil, fmt.Errorf("decode operation: %w: unknown type %q", ErrInvalidOperation, env.Type)
}

// rawDuration accepts the duration either as a JSON number or as a string.
func rawDuration(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	return string(raw), true
}
