package user

import (
	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/chronos-planner/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.With(auth.AuthMiddleware).Get("/me", h.Me)
	return r
}
