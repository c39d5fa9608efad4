package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/chronos-planner/internal/auth"
	"github.com/saulo-duarte/chronos-planner/internal/config"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

type Handler struct {
	service EventService
}

func NewHandler(service EventService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ownerID(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger) (string, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Fail(w, http.StatusUnauthorized, "Not authenticated")
		return "", false
	}
	return claims.UserID, true
}

func (h *Handler) writeError(w http.ResponseWriter, log logrus.FieldLogger, err error, action string) {
	switch {
	case errors.Is(err, ErrEventNotFound):
		config.Fail(w, http.StatusNotFound, "Event not found")
	case config.IsValidationError(err):
		config.Fail(w, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Errorf("Failed to %s", action)
		config.Fail(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

// parseBound accepts an RFC3339 instant or a YYYY-MM-DD date. A date used as
// the end of a window covers the whole day.
func parseBound(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	d, err := util.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected RFC3339 or YYYY-MM-DD", s)
	}
	if endOfDay {
		return d.AddDays(1).Add(-time.Nanosecond), nil
	}
	return d.Time, nil
}

// List returns every event, or only those overlapping the start/end window
// when either query parameter is given.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	q := r.URL.Query()
	if q.Get("start") == "" && q.Get("end") == "" {
		events, err := h.service.ListEvents(r.Context(), ownerID)
		if err != nil {
			h.writeError(w, log, err, "fetch events")
			return
		}
		config.Success(w, http.StatusOK, events)
		return
	}

	if q.Get("start") == "" || q.Get("end") == "" {
		config.Fail(w, http.StatusBadRequest, "Both start and end are required to filter events")
		return
	}
	start, err := parseBound(q.Get("start"), false)
	if err != nil {
		config.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseBound(q.Get("end"), true)
	if err != nil {
		config.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.service.ListEventsInWindow(r.Context(), ownerID, start, end)
	if err != nil {
		h.writeError(w, log, err, "fetch events")
		return
	}
	config.Success(w, http.StatusOK, events)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	event, err := h.service.GetEvent(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, log, err, "fetch event")
		return
	}
	config.Success(w, http.StatusOK, event)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	var dto CreateEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.service.CreateEvent(r.Context(), ownerID, dto)
	if err != nil {
		h.writeError(w, log, err, "create event")
		return
	}
	config.Success(w, http.StatusCreated, event)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	var dto UpdateEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.service.UpdateEvent(r.Context(), ownerID, chi.URLParam(r, "id"), dto)
	if err != nil {
		h.writeError(w, log, err, "update event")
		return
	}
	config.Success(w, http.StatusOK, event)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	if err := h.service.DeleteEvent(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, log, err, "delete event")
		return
	}
	config.Message(w, http.StatusOK, "Event deleted successfully")
}
