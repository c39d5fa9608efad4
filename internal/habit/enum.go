package habit

import "time"

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

var AllFrequencies = []Frequency{
	FrequencyDaily,
	FrequencyWeekly,
}

func (f Frequency) IsValid() bool {
	for _, v := range AllFrequencies {
		if f == v {
			return true
		}
	}
	return false
}

const DefaultColor = "#3B82F6"

// AllWeekdays is the default target set, Sunday first.
func AllWeekdays() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}
