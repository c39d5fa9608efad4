package todo

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var AllPriorities = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
}

func (p Priority) IsValid() bool {
	for _, v := range AllPriorities {
		if p == v {
			return true
		}
	}
	return false
}
