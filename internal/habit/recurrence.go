package habit

import util "github.com/saulo-duarte/chronos-planner/internal/utils"

// IsDue reports whether the habit is scheduled on date. Daily habits are due
// every day; weekly habits only on their target weekdays.
func IsDue(h *Habit, date util.Date) bool {
	switch h.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		return h.TargetsWeekday(date.Weekday())
	default:
		return false
	}
}
