package todo

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
	service TodoService
}

func NewHandler(service TodoService) *Handler {
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
	case errors.Is(err, ErrTodoNotFound):
		config.Fail(w, http.StatusNotFound, "Todo not found")
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

	todos, err := h.service.ListTodos(r.Context(), ownerID)
	if err != nil {
		h.writeError(w, log, err, "fetch todos")
		return
	}
	config.Success(w, http.StatusOK, todos)
}

func (h *Handler) ListInRange(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	start, err := util.ParseDate(chi.URLParam(r, "start"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := util.ParseDate(chi.URLParam(r, "end"))
	if err != nil {
		config.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	todos, err := h.service.ListTodosInRange(r.Context(), ownerID, start, end)
	if err != nil {
		h.writeError(w, log, err, "fetch todos")
		return
	}
	config.Success(w, http.StatusOK, todos)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	todo, err := h.service.GetTodo(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, log, err, "fetch todo")
		return
	}
	config.Success(w, http.StatusOK, todo)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	var dto CreateTodoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.service.CreateTodo(r.Context(), ownerID, dto)
	if err != nil {
		h.writeError(w, log, err, "create todo")
		return
	}
	config.Success(w, http.StatusCreated, todo)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	var dto UpdateTodoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.service.UpdateTodo(r.Context(), ownerID, chi.URLParam(r, "id"), dto)
	if err != nil {
		h.writeError(w, log, err, "update todo")
		return
	}
	config.Success(w, http.StatusOK, todo)
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	todo, err := h.service.ToggleTodo(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, log, err, "toggle todo")
		return
	}
	config.Success(w, http.StatusOK, todo)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	ownerID, ok := h.ownerID(w, r, log)
	if !ok {
		return
	}

	if err := h.service.DeleteTodo(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, log, err, "delete todo")
		return
	}
	config.Message(w, http.StatusOK, "Todo deleted successfully")
}
