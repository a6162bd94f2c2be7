package handlers

import (
	"itinerary-service/internal/api/dto"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/services"
	"net/http"
	"strings"
)

// RebuildHandler runs the day rebuilder over a posted day without touching
// storage. Useful for checking what a generator's output turns into.
type RebuildHandler struct {
	DefaultStart int
}

func (h *RebuildHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	var req dto.RebuildDayRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	start := h.DefaultStart
	if s := strings.TrimSpace(req.DefaultStart); s != "" {
		ms, ok := domain.ParseClock(s)
		if !ok {
			writeError(w, r, http.StatusBadRequest, "default_start must be HH:MM or HH:MM:SS")
			return
		}
		start = ms
	}

	items := services.RebuildDay(dto.ItemsToDomain(req.Items), start)
	writeJSON(w, r, http.StatusOK, dto.RebuildDayResponse{Items: dto.ItemsFromDomain(items)})
}
