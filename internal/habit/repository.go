package habit

import (
	"context"
	"errors"

	"github.com/saulo-duarte/chronos-planner/internal/store"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

var (
	ErrHabitNotFound      = errors.New("habit not found")
	ErrCompletionNotFound = errors.New("completion not found")
)

// errUnchanged aborts a collection update that has nothing to write.
var errUnchanged = errors.New("unchanged")

type HabitRepository interface {
	Create(ctx context.Context, ownerID string, dto CreateHabitDTO) (*Habit, error)
	FindByIdAndUserId(ctx context.Context, id, ownerID string) (*Habit, error)
	ListByUser(ctx context.Context, ownerID string) ([]*Habit, error)
	Update(ctx context.Context, id, ownerID string, dto UpdateHabitDTO) (*Habit, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type CompletionRepository interface {
	MarkComplete(ctx context.Context, habitID, ownerID string, date util.Date) (*Completion, error)
	MarkIncomplete(ctx context.Context, habitID, ownerID string, date util.Date) (bool, error)
	ListInRange(ctx context.Context, habitID, ownerID string, start, end util.Date) ([]Completion, error)
	ListByHabit(ctx context.Context, habitID, ownerID string) ([]Completion, error)
	ListByUser(ctx context.Context, ownerID string) ([]Completion, error)
}

type habitRepository struct {
	habits      *store.Collection[Habit]
	completions *store.Collection[Completion]
	clock       util.Clock
	newID       util.IDGenerator
}

func NewHabitRepository(habits *store.Collection[Habit], completions *store.Collection[Completion], clock util.Clock, newID util.IDGenerator) HabitRepository {
	return &habitRepository{
		habits:      habits,
		completions: completions,
		clock:       clock,
		newID:       newID,
	}
}

// Create stores a new habit, filling in the default frequency, target days
// and color when they are omitted.
func (r *habitRepository) Create(ctx context.Context, ownerID string, dto CreateHabitDTO) (*Habit, error) {
	now := r.clock.Now()
	h := Habit{
		ID:          r.newID(),
		OwnerID:     ownerID,
		Title:       dto.Title,
		Description: dto.Description,
		Frequency:   dto.Frequency,
		TargetDays:  dto.TargetDays,
		Color:       dto.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if h.Frequency == "" {
		h.Frequency = FrequencyDaily
	}
	if h.TargetDays == nil {
		h.TargetDays = AllWeekdays()
	}
	h.TargetDays = normalizeDays(h.TargetDays)
	if h.Color == "" {
		h.Color = DefaultColor
	}

	err := r.habits.Update(ctx, func(habits []Habit) ([]Habit, error) {
		return append(habits, h), nil
	})
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *habitRepository) FindByIdAndUserId(ctx context.Context, id, ownerID string) (*Habit, error) {
	habits, err := r.habits.All(ctx)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(habits, id, ownerID); idx >= 0 {
		return &habits[idx], nil
	}
	return nil, ErrHabitNotFound
}

func (r *habitRepository) ListByUser(ctx context.Context, ownerID string) ([]*Habit, error) {
	habits, err := r.habits.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Habit, 0)
	for i := range habits {
		if habits[i].OwnerID == ownerID {
			out = append(out, &habits[i])
		}
	}
	return out, nil
}

// Update merges dto into the stored habit and validates the resulting
// schedule while the collection is locked, so concurrent updates cannot
// combine into an invalid habit.
func (r *habitRepository) Update(ctx context.Context, id, ownerID string, dto UpdateHabitDTO) (*Habit, error) {
	var updated Habit
	err := r.habits.Update(ctx, func(habits []Habit) ([]Habit, error) {
		idx := indexOf(habits, id, ownerID)
		if idx < 0 {
			return nil, ErrHabitNotFound
		}

		merged := habits[idx]
		dto.ApplyTo(&merged)
		if err := validateSchedule(merged.Frequency, merged.TargetDays); err != nil {
			return nil, err
		}
		merged.UpdatedAt = r.clock.Now()

		habits[idx] = merged
		updated = merged
		return habits, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the habit, then every completion recorded for it. The habit
// list is saved first: if the completion cleanup fails the habit is already
// gone and the leftover completions are unreachable.
func (r *habitRepository) Delete(ctx context.Context, id, ownerID string) error {
	err := r.habits.Update(ctx, func(habits []Habit) ([]Habit, error) {
		idx := indexOf(habits, id, ownerID)
		if idx < 0 {
			return nil, ErrHabitNotFound
		}
		return append(habits[:idx], habits[idx+1:]...), nil
	})
	if err != nil {
		return err
	}

	return r.completions.Update(ctx, func(completions []Completion) ([]Completion, error) {
		kept := completions[:0]
		for _, c := range completions {
			if c.HabitID == id && c.OwnerID == ownerID {
				continue
			}
			kept = append(kept, c)
		}
		return kept, nil
	})
}

func indexOf(habits []Habit, id, ownerID string) int {
	for i := range habits {
		if habits[i].ID == id && habits[i].OwnerID == ownerID {
			return i
		}
	}
	return -1
}

type completionRepository struct {
	habits      *store.Collection[Habit]
	completions *store.Collection[Completion]
	clock       util.Clock
}

func NewCompletionRepository(habits *store.Collection[Habit], completions *store.Collection[Completion], clock util.Clock) CompletionRepository {
	return &completionRepository{habits: habits, completions: completions, clock: clock}
}

// MarkComplete is idempotent: an existing completion for the date is returned
// untouched and nothing is written. The habits lock is held while the
// completion is added, so a completion can never outlive a concurrent Delete.
func (r *completionRepository) MarkComplete(ctx context.Context, habitID, ownerID string, date util.Date) (*Completion, error) {
	var result Completion
	err := r.habits.Update(ctx, func(habits []Habit) ([]Habit, error) {
		if indexOf(habits, habitID, ownerID) < 0 {
			return nil, ErrHabitNotFound
		}

		err := r.completions.Update(ctx, func(completions []Completion) ([]Completion, error) {
			for _, c := range completions {
				if c.HabitID == habitID && c.OwnerID == ownerID && c.Date.Equal(date) {
					result = c
					return nil, errUnchanged
				}
			}
			result = Completion{
				HabitID:     habitID,
				OwnerID:     ownerID,
				Date:        date,
				CompletedAt: r.clock.Now(),
			}
			return append(completions, result), nil
		})
		if err != nil && !errors.Is(err, errUnchanged) {
			return nil, err
		}
		// The habit list itself is never rewritten here.
		return nil, errUnchanged
	})
	if err != nil && !errors.Is(err, errUnchanged) {
		return nil, err
	}
	return &result, nil
}

func (r *completionRepository) MarkIncomplete(ctx context.Context, habitID, ownerID string, date util.Date) (bool, error) {
	err := r.completions.Update(ctx, func(completions []Completion) ([]Completion, error) {
		for i, c := range completions {
			if c.HabitID == habitID && c.OwnerID == ownerID && c.Date.Equal(date) {
				return append(completions[:i], completions[i+1:]...), nil
			}
		}
		return nil, errUnchanged
	})
	if errors.Is(err, errUnchanged) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListInRange returns the habit's completions with start <= date <= end.
func (r *completionRepository) ListInRange(ctx context.Context, habitID, ownerID string, start, end util.Date) ([]Completion, error) {
	all, err := r.ListByHabit(ctx, habitID, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]Completion, 0, len(all))
	for _, c := range all {
		if c.Date.Before(start) || c.Date.After(end) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *completionRepository) ListByHabit(ctx context.Context, habitID, ownerID string) ([]Completion, error) {
	return r.filter(ctx, func(c Completion) bool {
		return c.HabitID == habitID && c.OwnerID == ownerID
	})
}

func (r *completionRepository) ListByUser(ctx context.Context, ownerID string) ([]Completion, error) {
	return r.filter(ctx, func(c Completion) bool {
		return c.OwnerID == ownerID
	})
}

func (r *completionRepository) filter(ctx context.Context, keep func(Completion) bool) ([]Completion, error) {
	completions, err := r.completions.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Completion, 0)
	for _, c := range completions {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}
