package habit

import (
	"slices"
	"time"

	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

type Habit struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"ownerId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Frequency   Frequency      `json:"frequency"`
	TargetDays  []time.Weekday `json:"targetDays"`
	Color       string         `json:"color"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (h *Habit) TargetsWeekday(day time.Weekday) bool {
	return slices.Contains(h.TargetDays, day)
}

// Completion records that a habit was done on one calendar date. There is at
// most one per (HabitID, Date).
type Completion struct {
	HabitID     string    `json:"habitId"`
	OwnerID     string    `json:"ownerId"`
	Date        util.Date `json:"date"`
	CompletedAt time.Time `json:"completedAt"`
}

// HabitWithCompletion is a habit as seen on one date. It is computed per
// query and never stored.
type HabitWithCompletion struct {
	Habit
	Completed bool `json:"completed"`
	Streak    *int `json:"streak,omitempty"`
}

// normalizeDays sorts and de-duplicates target days.
func normalizeDays(days []time.Weekday) []time.Weekday {
	out := append([]time.Weekday{}, days...)
	slices.Sort(out)
	return slices.Compact(out)
}
