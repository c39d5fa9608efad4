package habit

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/chronos-planner/internal/auth"
	"github.com/saulo-duarte/chronos-planner/internal/config"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

type Handler struct {
	service HabitService
}

func NewHandler(service HabitService) *Handler {
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
	case errors.Is(err, ErrHabitNotFound):
		config.Fail(w, http.StatusNotFound, "Habit not found")
	case errors.Is(err, ErrCompletionNotFound):
		config.Fail(w, http.StatusNotFound, "Completion not found")
	case config.IsValidationError(err):
		config.Fail(w, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Errorf("Failed to %s", action)
		config.Fail(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	habits, err := h.service.ListHabits(r.Context(), ownerID)
	if err != nil {
		h.writeError(w, log, err, "fetch habits")
		return
	}
	config.Success(w, http.StatusOK, habits)
}

func (h *Handler) ListForDate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	date, err := util.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	habits, err := h.service.HabitsForDate(r.Context(), ownerID, date)
	if err != nil {
		h.writeError(w, log, err, "fetch habits")
		return
	}
	config.Success(w, http.StatusOK, habits)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	habit, err := h.service.GetHabit(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, log, err, "fetch habit")
		return
	}
	config.Success(w, http.StatusOK, habit)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	var dto CreateHabitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	habit, err := h.service.CreateHabit(r.Context(), ownerID, dto)
	if err != nil {
		h.writeError(w, log, err, "create habit")
		return
	}
	config.Success(w, http.StatusCreated, habit)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	var dto UpdateHabitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	habit, err := h.service.UpdateHabit(r.Context(), ownerID, chi.URLParam(r, "id"), dto)
	if err != nil {
		h.writeError(w, log, err, "update habit")
		return
	}
	config.Success(w, http.StatusOK, habit)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	if err := h.service.DeleteHabit(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, log, err, "delete habit")
		return
	}
	config.Message(w, http.StatusOK, "Habit deleted successfully")
}

func (h *Handler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	var dto CompleteHabitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if dto.Date == "" {
		config.Fail(w, http.StatusBadRequest, "Missing required field: date")
		return
	}
	date, err := util.ParseDate(dto.Date)
	if err != nil {
		config.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	completion, err := h.service.MarkComplete(r.Context(), ownerID, chi.URLParam(r, "id"), date)
	if err != nil {
		h.writeError(w, log, err, "mark habit complete")
		return
	}
	config.Success(w, http.StatusOK, completion)
}

func (h *Handler) MarkIncomplete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	date, err := util.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.MarkIncomplete(r.Context(), ownerID, chi.URLParam(r, "id"), date); err != nil {
		h.writeError(w, log, err, "mark habit incomplete")
		return
	}
	config.Message(w, http.StatusOK, "Habit marked incomplete")
}

func (h *Handler) Streak(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	streak, err := h.service.Streak(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, log, err, "get streak")
		return
	}
	config.Success(w, http.StatusOK, StreakResponse{Streak: streak})
}

func (h *Handler) Completions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	q := r.URL.Query()
	if q.Get("start") == "" || q.Get("end") == "" {
		config.Fail(w, http.StatusBadRequest, "Missing required query parameters: start, end")
		return
	}
	start, err := util.ParseDate(q.Get("start"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := util.ParseDate(q.Get("end"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	completions, err := h.service.CompletionsInRange(r.Context(), ownerID, chi.URLParam(r, "id"), start, end)
	if err != nil {
		h.writeError(w, log, err, "fetch completions")
		return
	}
	config.Success(w, http.StatusOK, completions)
}
