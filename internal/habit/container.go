package habit

import (
	"github.com/saulo-duarte/chronos-planner/internal/store"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

type HabitContainer struct {
	Handler *Handler
	Service HabitService
}

func NewHabitContainer(backend store.Backend, clock util.Clock, newID util.IDGenerator) *HabitContainer {
	habits := store.NewCollection[Habit](backend, store.HabitsCollection)
	completions := store.NewCollection[Completion](backend, store.CompletionsCollection)

	habitRepo := NewHabitRepository(habits, completions, clock, newID)
	completionRepo := NewCompletionRepository(habits, completions, clock)
	service := NewService(habitRepo, completionRepo, clock)
	handler := NewHandler(service)

	return &HabitContainer{
		Handler: handler,
		Service: service,
	}
}
