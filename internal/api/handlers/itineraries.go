package handlers

import (
	"errors"
	"io"
	"itinerary-service/internal/api/dto"
	"itinerary-service/internal/platform/obs"
	"itinerary-service/internal/ports"
	"itinerary-service/internal/services"
	"log"
	"net/http"
	"strings"
	"sync"
)

// ItineraryHandler exposes import, retrieval and editing of stored itineraries.
type ItineraryHandler struct {
	Repo    ports.ItineraryRepository
	Cache   ports.SnapshotCache
	Session *services.EditSession

	// Edits are load-modify-save; serializing them keeps two concurrent drags
	// from overwriting each other's snapshot.
	mu sync.Mutex
}

func (h *ItineraryHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Days) == 0 {
		writeError(w, r, http.StatusBadRequest, "at least one day is required")
		return
	}

	it, err := services.ImportItinerary(r.Context(), req.ToService(), h.Session, h.Repo, h.Cache)
	if errors.Is(err, services.ErrItineraryExists) {
		writeError(w, r, http.StatusConflict, services.ErrItineraryExists.Error())
		return
	}
	if err != nil {
		log.Printf("req_id=%s import itinerary failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ItineraryFromDomain(it))
}

func (h *ItineraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))

	it, err := services.LoadItinerary(r.Context(), id, h.Repo, h.Cache)
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "itinerary not found")
		return
	}
	if err != nil {
		log.Printf("req_id=%s get itinerary failed id=%s: %v", obs.RequestID(r.Context()), id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ItineraryFromDomain(it))
}

// ApplyOperation applies one edit operation and returns the resulting
// itinerary. Refused operations leave the stored itinerary untouched.
func (h *ItineraryHandler) ApplyOperation(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	r.Body.Close()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "could not read body")
		return
	}

	op, err := services.DecodeOperation(body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	it, err := services.ApplyEdit(r.Context(), id, op, h.Session, h.Repo, h.Cache)
	h.mu.Unlock()

	if err != nil {
		status, msg := editErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("req_id=%s apply %s failed id=%s: %v", obs.RequestID(r.Context()), op.Kind(), id, err)
		}
		writeError(w, r, status, msg)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ItineraryFromDomain(it))
}

func editErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return http.StatusNotFound, "itinerary not found"
	case errors.Is(err, services.ErrDayNotFound):
		return http.StatusNotFound, services.ErrDayNotFound.Error()
	case errors.Is(err, services.ErrItemNotFound):
		return http.StatusNotFound, services.ErrItemNotFound.Error()
	case errors.Is(err, services.ErrCapacityReached):
		return http.StatusConflict, services.ErrCapacityReached.Error()
	case errors.Is(err, services.ErrLastDay):
		return http.StatusConflict, services.ErrLastDay.Error()
	case errors.Is(err, services.ErrIndexOutOfRange),
		errors.Is(err, services.ErrUnknownOperation),
		errors.Is(err, services.ErrInvalidOperation):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}
