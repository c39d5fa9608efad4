package habit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/date/{date}", h.ListForDate)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/completions", h.Completions)
	r.Patch("/{id}/complete", h.MarkComplete)
	r.Delete("/{id}/complete/{date}", h.MarkIncomplete)
	r.Get("/{id}/streak", h.Streak)

	return r
}
