package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/chronos-planner/internal/auth"
	"github.com/saulo-duarte/chronos-planner/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(service UserService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if dto.Email == "" || dto.Password == "" {
		config.Fail(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	resp, err := h.service.Register(r.Context(), dto)
	switch {
	case err == nil:
		config.Success(w, http.StatusCreated, resp)
	case errors.Is(err, ErrUserExists):
		config.Fail(w, http.StatusConflict, "User with this email already exists")
	case config.IsValidationError(err):
		config.Fail(w, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Error("Failed to register user")
		config.Fail(w, http.StatusInternalServerError, "Failed to register user")
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if dto.Email == "" || dto.Password == "" {
		config.Fail(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	resp, err := h.service.Login(r.Context(), dto)
	switch {
	case err == nil:
		config.Success(w, http.StatusOK, resp)
	case errors.Is(err, ErrInvalidCredentials):
		config.Fail(w, http.StatusUnauthorized, "Invalid email or password")
	default:
		log.WithError(err).Error("Failed to log in")
		config.Fail(w, http.StatusInternalServerError, "Failed to log in")
	}
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Fail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	me, err := h.service.Me(r.Context(), claims.UserID)
	switch {
	case err == nil:
		config.Success(w, http.StatusOK, me)
	case errors.Is(err, ErrUserNotFound):
		config.Fail(w, http.StatusUnauthorized, "User no longer exists")
	default:
		config.Fail(w, http.StatusInternalServerError, "Failed to fetch user")
	}
}
