package dto

import (
	"itinerary-service/internal/domain"
	"itinerary-service/internal/services"
)

// ItemDTO is the wire shape of a scheduled item, shared by requests and
// responses.
type ItemDTO struct {
	ID        string  `json:"id,omitempty"`
	BackendID string  `json:"backend_id,omitempty"`
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	TimeSlot  string  `json:"time_slot,omitempty"`
	StartTime string  `json:"start_time,omitempty"`
	EndTime   string  `json:"end_time,omitempty"`
	Duration  int     `json:"duration,omitempty"`
	Hours     float64 `json:"duration_hours,omitempty"`
	Day       int     `json:"day,omitempty"`
}

type DayDTO struct {
	DayNumber int       `json:"day_number"`
	Items     []ItemDTO `json:"items"`
}

// ImportRequest is a freshly generated itinerary. The same shape is used for
// seed files.
type ImportRequest struct {
	ID    string   `json:"id,omitempty"`
	Title string   `json:"title"`
	Days  []DayDTO `json:"days"`
}

type ItineraryResponse struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Days  []DayDTO `json:"days"`
}

// RebuildDayRequest feeds the stateless rebuild endpoint. DefaultStart is a
// clock string; empty means the service default.
type RebuildDayRequest struct {
	DefaultStart string    `json:"default_start,omitempty"`
	Items        []ItemDTO `json:"items"`
}

type RebuildDayResponse struct {
	Items []ItemDTO `json:"items"`
}

// Unknown categories fall back to destination, the bulk of generated items.
func (i ItemDTO) ToDomain() domain.Item {
	c, ok := domain.ParseCategory(i.Category)
	if !ok {
		c = domain.CategoryDestination
	}

	return domain.Item{
		ID:        i.ID,
		BackendID: i.BackendID,
		Category:  c,
		Name:      i.Name,
		TimeSlot:  i.TimeSlot,
		StartTime: i.StartTime,
		EndTime:   i.EndTime,
		Duration:  i.Duration,
		Hours:     i.Hours,
		Day:       i.Day,
	}
}

func ItemFromDomain(item domain.Item) ItemDTO {
	return ItemDTO{
		ID:        item.ID,
		BackendID: item.BackendID,
		Category:  string(item.Category),
		Name:      item.Name,
		TimeSlot:  item.TimeSlot,
		StartTime: item.StartTime,
		EndTime:   item.EndTime,
		Duration:  item.Duration,
		Hours:     item.Hours,
		Day:       item.Day,
	}
}

func ItemsToDomain(items []ItemDTO) []domain.Item {
	if items == nil {
		return nil
	}
	out := make([]domain.Item, 0, len(items))
	for _, i := range items {
		out = append(out, i.ToDomain())
	}
	return out
}

func ItemsFromDomain(items []domain.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, i := range items {
		out = append(out, ItemFromDomain(i))
	}
	return out
}

func (r ImportRequest) ToService() services.ImportItineraryRequest {
	days := make([]domain.Day, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, domain.Day{Number: d.DayNumber, Items: ItemsToDomain(d.Items)})
	}
	return services.ImportItineraryRequest{ID: r.ID, Title: r.Title, Days: days}
}

func ItineraryFromDomain(it domain.Itinerary) ItineraryResponse {
	res := ItineraryResponse{
		ID:    it.ID,
		Title: it.Title,
		Days:  make([]DayDTO, 0, len(it.Days)),
	}
	for _, d := range it.Days {
		res.Days = append(res.Days, DayDTO{DayNumber: d.Number, Items: ItemsFromDomain(d.Items)})
	}
	return res
}
