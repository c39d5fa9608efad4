package todo

import (
	"time"

	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

// Todo is a one-off task. A zero DueDate means the todo is unscheduled.
type Todo struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"ownerId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	DueDate     util.Date  `json:"dueDate"`
	Priority    Priority   `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// setCompleted keeps CompletedAt in step with Completed.
func (t *Todo) setCompleted(completed bool, now time.Time) {
	t.Completed = completed
	if !completed {
		t.CompletedAt = nil
		return
	}
	if t.CompletedAt == nil {
		t.CompletedAt = &now
	}
}
