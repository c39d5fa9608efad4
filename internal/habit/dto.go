package habit

import "time"

type CreateHabitDTO struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Frequency   Frequency      `json:"frequency"`
	TargetDays  []time.Weekday `json:"targetDays"`
	Color       string         `json:"color"`
}

type UpdateHabitDTO struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Frequency   *Frequency      `json:"frequency"`
	TargetDays  *[]time.Weekday `json:"targetDays"`
	Color       *string         `json:"color"`
}

// ApplyTo merges the present fields into h. ID, OwnerID and CreatedAt are
// never touched.
func (dto UpdateHabitDTO) ApplyTo(h *Habit) {
	if dto.Title != nil {
		h.Title = *dto.Title
	}
	if dto.Description != nil {
		h.Description = *dto.Description
	}
	if dto.Frequency != nil {
		h.Frequency = *dto.Frequency
	}
	if dto.TargetDays != nil {
		h.TargetDays = normalizeDays(*dto.TargetDays)
	}
	if dto.Color != nil {
		h.Color = *dto.Color
	}
}

type CompleteHabitDTO struct {
	Date string `json:"date"`
}

type StreakResponse struct {
	Streak int `json:"streak"`
}
