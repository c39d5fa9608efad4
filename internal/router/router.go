package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/chronos-planner/internal/auth"
	"github.com/saulo-duarte/chronos-planner/internal/config"
	"github.com/saulo-duarte/chronos-planner/internal/container"
	"github.com/saulo-duarte/chronos-planner/internal/event"
	"github.com/saulo-duarte/chronos-planner/internal/habit"
	"github.com/saulo-duarte/chronos-planner/internal/middlewares"
	"github.com/saulo-duarte/chronos-planner/internal/todo"
	"github.com/saulo-duarte/chronos-planner/internal/user"
)

type RouterConfig struct {
	UserHandler  *user.Handler
	HabitHandler *habit.Handler
	TodoHandler  *todo.Handler
	EventHandler *event.Handler
	CorsOrigins  []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CorsOrigins))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		config.Fail(w, http.StatusNotFound, "Route not found")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Mount("/auth", user.Routes(cfg.UserHandler))

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Mount("/habits", habit.Routes(cfg.HabitHandler))
			r.Mount("/todos", todo.Routes(cfg.TodoHandler))
			r.Mount("/events", event.Routes(cfg.EventHandler))
		})
	})

	return r
}

// FromContainer builds the router for a fully wired container.
func FromContainer(c *container.Container) http.Handler {
	return New(RouterConfig{
		UserHandler:  c.UserContainer.Handler,
		HabitHandler: c.HabitContainer.Handler,
		TodoHandler:  c.TodoContainer.Handler,
		EventHandler: c.EventContainer.Handler,
		CorsOrigins:  c.Config.CorsOrigins,
	})
}
