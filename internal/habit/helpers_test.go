package habit_test

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/saulo-duarte/chronos-planner/internal/habit"
	"github.com/saulo-duarte/chronos-planner/internal/store"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

const (
	ownerA = "owner-a"
	ownerB = "owner-b"
)

var today = time.Date(2024, time.January, 4, 9, 30, 0, 0, time.UTC)

func sequentialIDs() util.IDGenerator {
	var n int64
	return func() string {
		return fmt.Sprintf("habit-%d", atomic.AddInt64(&n, 1))
	}
}

type fixture struct {
	backend     *store.MemoryBackend
	habits      habit.HabitRepository
	completions habit.CompletionRepository
	service     habit.HabitService
	clock       *time.Time
}

func newFixture() *fixture {
	now := today
	clock := util.Clock(func() time.Time { return now })
	backend := store.NewMemoryBackend()

	habitsCol := store.NewCollection[habit.Habit](backend, store.HabitsCollection)
	completionsCol := store.NewCollection[habit.Completion](backend, store.CompletionsCollection)

	habits := habit.NewHabitRepository(habitsCol, completionsCol, clock, sequentialIDs())
	completions := habit.NewCompletionRepository(habitsCol, completionsCol, clock)

	return &fixture{
		backend:     backend,
		habits:      habits,
		completions: completions,
		service:     habit.NewService(habits, completions, clock),
		clock:       &now,
	}
}

func date(s string) util.Date {
	d, err := util.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func completionsOn(h *habit.Habit, dates ...string) []habit.Completion {
	out := make([]habit.Completion, 0, len(dates))
	for _, d := range dates {
		out = append(out, habit.Completion{HabitID: h.ID, OwnerID: h.OwnerID, Date: date(d)})
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
