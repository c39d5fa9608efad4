package habit

import (
	"slices"

	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

const (
	dailyMaxGap  = 1
	weeklyMaxGap = 7
)

// ComputeStreak counts consecutive completions walking backwards from ref.
//
// Daily habits tolerate a gap of at most one day between the cursor and the
// next completion, so a streak through yesterday survives an unfinished today.
// Weekly habits only look at completions on target weekdays and accept any
// gap up to seven days, including completions ahead of the cursor. With several target days per week that is looser
// than checking the previous scheduled occurrence; the threshold is kept as
// is so existing streak numbers do not change.
//
// A daily completion dated after the cursor is a negative gap and ends the
// walk like any other gap outside {0, 1}.
func ComputeStreak(h *Habit, completions []Completion, ref util.Date) int {
	if !h.Frequency.IsValid() {
		return 0
	}

	dates := make([]util.Date, 0, len(completions))
	for _, c := range completions {
		if c.HabitID != h.ID {
			continue
		}
		dates = append(dates, c.Date)
	}
	slices.SortFunc(dates, func(a, b util.Date) int {
		return b.Compare(a.Time)
	})

	streak := 0
	cursor := ref
	for _, d := range dates {
		gap := cursor.DaysSince(d)

		if h.Frequency == FrequencyWeekly {
			if !h.TargetsWeekday(d.Weekday()) {
				continue
			}
			if gap > weeklyMaxGap {
				break
			}
		} else if gap < 0 || gap > dailyMaxGap {
			break
		}

		streak++
		cursor = d
	}

	return streak
}
