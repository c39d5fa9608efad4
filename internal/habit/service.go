package habit

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/chronos-planner/internal/config"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

type HabitService interface {
	CreateHabit(ctx context.Context, ownerID string, dto CreateHabitDTO) (*Habit, error)
	ListHabits(ctx context.Context, ownerID string) ([]*Habit, error)
	GetHabit(ctx context.Context, ownerID, id string) (*Habit, error)
	UpdateHabit(ctx context.Context, ownerID, id string, dto UpdateHabitDTO) (*Habit, error)
	DeleteHabit(ctx context.Context, ownerID, id string) error

	HabitsForDate(ctx context.Context, ownerID string, date util.Date) ([]HabitWithCompletion, error)
	MarkComplete(ctx context.Context, ownerID, id string, date util.Date) (*Completion, error)
	MarkIncomplete(ctx context.Context, ownerID, id string, date util.Date) error
	Streak(ctx context.Context, ownerID, id string) (int, error)
	CompletionsInRange(ctx context.Context, ownerID, id string, start, end util.Date) ([]Completion, error)
}

type habitService struct {
	habits      HabitRepository
	completions CompletionRepository
	clock       util.Clock
}

func NewService(habits HabitRepository, completions CompletionRepository, clock util.Clock) HabitService {
	return &habitService{
		habits:      habits,
		completions: completions,
		clock:       clock,
	}
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return config.NewValidationError("title", "is required")
	}
	return nil
}

func validateSchedule(frequency Frequency, days []time.Weekday) error {
	if !frequency.IsValid() {
		return config.NewValidationError("frequency", "must be daily or weekly")
	}
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return config.NewValidationError("targetDays", "days must be between 0 (Sunday) and 6 (Saturday)")
		}
	}
	if frequency == FrequencyWeekly && len(days) == 0 {
		return config.NewValidationError("targetDays", "weekly habits need at least one target day")
	}
	return nil
}

func (s *habitService) CreateHabit(ctx context.Context, ownerID string, dto CreateHabitDTO) (*Habit, error) {
	log := config.WithContext(ctx)

	if err := validateTitle(dto.Title); err != nil {
		return nil, err
	}
	frequency := dto.Frequency
	if frequency == "" {
		frequency = FrequencyDaily
	}
	days := dto.TargetDays
	if days == nil {
		days = AllWeekdays()
	}
	if err := validateSchedule(frequency, days); err != nil {
		return nil, err
	}
	dto.Title = strings.TrimSpace(dto.Title)

	h, err := s.habits.Create(ctx, ownerID, dto)
	if err != nil {
		log.WithError(err).Error("Failed to create habit")
		return nil, err
	}

	log.WithField("habit_id", h.ID).Info("Habit created successfully")
	return h, nil
}

func (s *habitService) ListHabits(ctx context.Context, ownerID string) ([]*Habit, error) {
	habits, err := s.habits.ListByUser(ctx, ownerID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list habits")
		return nil, err
	}
	return habits, nil
}

func (s *habitService) GetHabit(ctx context.Context, ownerID, id string) (*Habit, error) {
	h, err := s.habits.FindByIdAndUserId(ctx, id, ownerID)
	if err != nil {
		log := config.WithContext(ctx)
		if errors.Is(err, ErrHabitNotFound) {
			log.WithFields(logrus.Fields{
				"habit_id": id,
				"user_id":  ownerID,
			}).Warn("Habit not found or does not belong to user")
			return nil, ErrHabitNotFound
		}
		log.WithError(err).Error("Error finding habit by ID")
		return nil, err
	}
	return h, nil
}

func (s *habitService) UpdateHabit(ctx context.Context, ownerID, id string, dto UpdateHabitDTO) (*Habit, error) {
	log := config.WithContext(ctx)

	if dto.Title != nil {
		if err := validateTitle(*dto.Title); err != nil {
			return nil, err
		}
		trimmed := strings.TrimSpace(*dto.Title)
		dto.Title = &trimmed
	}

	updated, err := s.habits.Update(ctx, id, ownerID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrHabitNotFound):
			log.WithFields(logrus.Fields{
				"habit_id": id,
				"user_id":  ownerID,
			}).Warn("Habit not found or does not belong to user for update")
		case !config.IsValidationError(err):
			log.WithError(err).Error("Failed to update habit")
		}
		return nil, err
	}

	log.WithField("habit_id", id).Info("Habit updated successfully")
	return updated, nil
}

func (s *habitService) DeleteHabit(ctx context.Context, ownerID, id string) error {
	log := config.WithContext(ctx)

	if err := s.habits.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			log.WithFields(logrus.Fields{
				"habit_id": id,
				"user_id":  ownerID,
			}).Warn("Habit not found or does not belong to user for deletion")
			return ErrHabitNotFound
		}
		log.WithError(err).Error("Failed to delete habit")
		return err
	}

	log.WithField("habit_id", id).Info("Habit deleted successfully")
	return nil
}

// HabitsForDate returns the owner's habits due on date with their completion
// state for that date and their streak as of today.
func (s *habitService) HabitsForDate(ctx context.Context, ownerID string, date util.Date) ([]HabitWithCompletion, error) {
	log := config.WithContext(ctx)

	habits, err := s.habits.ListByUser(ctx, ownerID)
	if err != nil {
		log.WithError(err).Error("Failed to list habits for date")
		return nil, err
	}
	completions, err := s.completions.ListByUser(ctx, ownerID)
	if err != nil {
		log.WithError(err).Error("Failed to list completions for date")
		return nil, err
	}

	byHabit := make(map[string][]Completion)
	for _, c := range completions {
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c)
	}

	today := s.clock.Today()
	out := make([]HabitWithCompletion, 0, len(habits))
	for _, h := range habits {
		if !IsDue(h, date) {
			continue
		}

		completed := false
		for _, c := range byHabit[h.ID] {
			if c.Date.Equal(date) {
				completed = true
				break
			}
		}

		streak := ComputeStreak(h, byHabit[h.ID], today)
		out = append(out, HabitWithCompletion{
			Habit:     *h,
			Completed: completed,
			Streak:    &streak,
		})
	}
	return out, nil
}

func (s *habitService) MarkComplete(ctx context.Context, ownerID, id string, date util.Date) (*Completion, error) {
	log := config.WithContext(ctx)

	if _, err := s.GetHabit(ctx, ownerID, id); err != nil {
		return nil, err
	}

	completion, err := s.completions.MarkComplete(ctx, id, ownerID, date)
	if err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			log.WithField("habit_id", id).Warn("Habit deleted before completion was recorded")
			return nil, ErrHabitNotFound
		}
		log.WithError(err).Error("Failed to mark habit complete")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"habit_id": id,
		"date":     date.String(),
	}).Info("Habit marked complete")
	return completion, nil
}

func (s *habitService) MarkIncomplete(ctx context.Context, ownerID, id string, date util.Date) error {
	log := config.WithContext(ctx)

	removed, err := s.completions.MarkIncomplete(ctx, id, ownerID, date)
	if err != nil {
		log.WithError(err).Error("Failed to mark habit incomplete")
		return err
	}
	if !removed {
		log.WithFields(logrus.Fields{
			"habit_id": id,
			"date":     date.String(),
		}).Warn("No completion to remove")
		return ErrCompletionNotFound
	}

	log.WithFields(logrus.Fields{
		"habit_id": id,
		"date":     date.String(),
	}).Info("Habit marked incomplete")
	return nil
}

func (s *habitService) Streak(ctx context.Context, ownerID, id string) (int, error) {
	h, err := s.GetHabit(ctx, ownerID, id)
	if err != nil {
		return 0, err
	}

	completions, err := s.completions.ListByHabit(ctx, id, ownerID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load completions for streak")
		return 0, err
	}

	return ComputeStreak(h, completions, s.clock.Today()), nil
}

func (s *habitService) CompletionsInRange(ctx context.Context, ownerID, id string, start, end util.Date) ([]Completion, error) {
	if end.Before(start) {
		return nil, config.NewValidationError("end", "must not be before start")
	}
	if _, err := s.GetHabit(ctx, ownerID, id); err != nil {
		return nil, err
	}

	completions, err := s.completions.ListInRange(ctx, id, ownerID, start, end)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list completions in range")
		return nil, err
	}
	return completions, nil
}
