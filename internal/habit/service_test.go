package habit_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chronos-planner/internal/config"
	"github.com/saulo-duarte/chronos-planner/internal/habit"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

func TestCreateHabitValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		dto  habit.CreateHabitDTO
	}{
		{"MissingTitle", habit.CreateHabitDTO{Title: "   "}},
		{"UnknownFrequency", habit.CreateHabitDTO{Title: "Read", Frequency: "monthly"}},
		{"WeeklyWithoutDays", habit.CreateHabitDTO{Title: "Read", Frequency: habit.FrequencyWeekly, TargetDays: []time.Weekday{}}},
		{"DayOutOfRange", habit.CreateHabitDTO{Title: "Read", TargetDays: []time.Weekday{7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newFixture().service.CreateHabit(ctx, ownerA, tt.dto)
			assert.True(t, config.IsValidationError(err), "got %v", err)
		})
	}

	t.Run("TrimsTitle", func(t *testing.T) {
		h, err := newFixture().service.CreateHabit(ctx, ownerA, habit.CreateHabitDTO{Title: "  Read  "})
		require.NoError(t, err)
		assert.Equal(t, "Read", h.Title)
	})
}

func TestUpdateHabitValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	h, err := f.service.CreateHabit(ctx, ownerA, habit.CreateHabitDTO{Title: "Read"})
	require.NoError(t, err)

	_, err = f.service.UpdateHabit(ctx, ownerA, h.ID, habit.UpdateHabitDTO{TargetDays: &[]time.Weekday{}, Frequency: ptr(habit.FrequencyWeekly)})
	assert.True(t, config.IsValidationError(err))

	_, err = f.service.UpdateHabit(ctx, ownerA, h.ID, habit.UpdateHabitDTO{Title: ptr("")})
	assert.True(t, config.IsValidationError(err))

	_, err = f.service.UpdateHabit(ctx, ownerA, "missing", habit.UpdateHabitDTO{Title: ptr("x")})
	assert.ErrorIs(t, err, habit.ErrHabitNotFound)

	updated, err := f.service.UpdateHabit(ctx, ownerA, h.ID, habit.UpdateHabitDTO{
		Frequency:  ptr(habit.FrequencyWeekly),
		TargetDays: &[]time.Weekday{time.Wednesday},
	})
	require.NoError(t, err)
	assert.Equal(t, habit.FrequencyWeekly, updated.Frequency)
	assert.Equal(t, []time.Weekday{time.Wednesday}, updated.TargetDays)
}

func TestHabitsForDate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	daily, err := f.service.CreateHabit(ctx, ownerA, habit.CreateHabitDTO{Title: "Read"})
	require.NoError(t, err)
	weekly, err := f.service.CreateHabit(ctx, ownerA, habit.CreateHabitDTO{
		Title:      "Gym",
		Frequency:  habit.FrequencyWeekly,
		TargetDays: []time.Weekday{time.Monday},
	})
	require.NoError(t, err)
	_, err = f.service.CreateHabit(ctx, ownerB, habit.CreateHabitDTO{Title: "Other owner"})
	require.NoError(t, err)

	for _, d := range []string{"2024-01-02", "2024-01-03", "2024-01-04"} {
		_, err := f.service.MarkComplete(ctx, ownerA, daily.ID, date(d))
		require.NoError(t, err)
	}

	t.Run("Monday", func(t *testing.T) {
		got, err := f.service.HabitsForDate(ctx, ownerA, date("2024-01-01"))
		require.NoError(t, err)
		require.Len(t, got, 2)

		byID := map[string]habit.HabitWithCompletion{}
		for _, h := range got {
			byID[h.ID] = h
		}
		assert.False(t, byID[daily.ID].Completed)
		require.NotNil(t, byID[daily.ID].Streak)
		assert.Equal(t, 3, *byID[daily.ID].Streak)
		assert.False(t, byID[weekly.ID].Completed)
		assert.Equal(t, 0, *byID[weekly.ID].Streak)
	})

	t.Run("Wednesday", func(t *testing.T) {
		got, err := f.service.HabitsForDate(ctx, ownerA, date("2024-01-03"))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, daily.ID, got[0].ID)
		assert.True(t, got[0].Completed)
	})

	t.Run("OtherOwner", func(t *testing.T) {
		got, err := f.service.HabitsForDate(ctx, ownerB, date("2024-01-03"))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.False(t, got[0].Completed)
	})
}

func TestServiceCompletionFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	h, err := f.service.CreateHabit(ctx, ownerA, habit.CreateHabitDTO{Title: "Read"})
	require.NoError(t, err)

	_, err = f.service.MarkComplete(ctx, ownerB, h.ID, date("2024-01-04"))
	assert.ErrorIs(t, err, habit.ErrHabitNotFound)

	for _, d := range []string{"2024-01-01", "2024-01-03", "2024-01-04"} {
		_, err := f.service.MarkComplete(ctx, ownerA, h.ID, date(d))
		require.NoError(t, err)
	}

	streak, err := f.service.Streak(ctx, ownerA, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)

	_, err = f.service.Streak(ctx, ownerB, h.ID)
	assert.ErrorIs(t, err, habit.ErrHabitNotFound)

	require.NoError(t, f.service.MarkIncomplete(ctx, ownerA, h.ID, date("2024-01-04")))
	assert.ErrorIs(t, f.service.MarkIncomplete(ctx, ownerA, h.ID, date("2024-01-04")), habit.ErrCompletionNotFound)

	streak, err = f.service.Streak(ctx, ownerA, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)

	got, err := f.service.CompletionsInRange(ctx, ownerA, h.ID, date("2024-01-01"), date("2024-01-31"))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = f.service.CompletionsInRange(ctx, ownerA, h.ID, date("2024-01-31"), date("2024-01-01"))
	assert.True(t, config.IsValidationError(err))

	require.NoError(t, f.service.DeleteHabit(ctx, ownerA, h.ID))
	assert.ErrorIs(t, f.service.DeleteHabit(ctx, ownerA, h.ID), habit.ErrHabitNotFound)
}

// hookedHabits runs a one-shot hook around repository calls to reproduce
// requests that interleave with another writer.
type hookedHabits struct {
	habit.HabitRepository
	beforeUpdate func()
	afterFind    func()
}

func (r *hookedHabits) Update(ctx context.Context, id, ownerID string, dto habit.UpdateHabitDTO) (*habit.Habit, error) {
	if hook := r.beforeUpdate; hook != nil {
		r.beforeUpdate = nil
		hook()
	}
	return r.HabitRepository.Update(ctx, id, ownerID, dto)
}

func (r *hookedHabits) FindByIdAndUserId(ctx context.Context, id, ownerID string) (*habit.Habit, error) {
	h, err := r.HabitRepository.FindByIdAndUserId(ctx, id, ownerID)
	if hook := r.afterFind; hook != nil {
		r.afterFind = nil
		hook()
	}
	return h, err
}

func TestUpdateHabitRevalidatesAgainstConcurrentWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	h, err := f.service.CreateHabit(ctx, ownerA, habit.CreateHabitDTO{Title: "Read"})
	require.NoError(t, err)

	hooked := &hookedHabits{HabitRepository: f.habits}
	hooked.beforeUpdate = func() {
		_, err := f.habits.Update(ctx, h.ID, ownerA, habit.UpdateHabitDTO{TargetDays: &[]time.Weekday{}})
		require.NoError(t, err)
	}
	svc := habit.NewService(hooked, f.completions, util.FixedClock(today))

	_, err = svc.UpdateHabit(ctx, ownerA, h.ID, habit.UpdateHabitDTO{Frequency: ptr(habit.FrequencyWeekly)})
	assert.True(t, config.IsValidationError(err), "got %v", err)

	stored, err := f.habits.FindByIdAndUserId(ctx, h.ID, ownerA)
	require.NoError(t, err)
	assert.Equal(t, habit.FrequencyDaily, stored.Frequency)
	assert.Empty(t, stored.TargetDays)
}

func TestMarkCompleteRacingDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	h, err := f.service.CreateHabit(ctx, ownerA, habit.CreateHabitDTO{Title: "Read"})
	require.NoError(t, err)

	hooked := &hookedHabits{HabitRepository: f.habits}
	hooked.afterFind = func() {
		require.NoError(t, f.habits.Delete(ctx, h.ID, ownerA))
	}
	svc := habit.NewService(hooked, f.completions, util.FixedClock(today))

	_, err = svc.MarkComplete(ctx, ownerA, h.ID, date("2024-01-04"))
	assert.ErrorIs(t, err, habit.ErrHabitNotFound)

	orphans, err := f.completions.ListByUser(ctx, ownerA)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestMarkCompleteConcurrentWithDelete(t *testing.T) {
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		f := newFixture()
		h, err := f.service.CreateHabit(ctx, ownerA, habit.CreateHabitDTO{Title: "Read"})
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = f.service.MarkComplete(ctx, ownerA, h.ID, date("2024-01-04"))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, f.service.DeleteHabit(ctx, ownerA, h.ID))
		}()
		wg.Wait()

		orphans, err := f.completions.ListByUser(ctx, ownerA)
		require.NoError(t, err)
		assert.Empty(t, orphans)
	}
}
