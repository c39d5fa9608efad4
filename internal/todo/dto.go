package todo

import (
	"time"

	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

type CreateTodoDTO struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     util.Date `json:"dueDate"`
	Priority    Priority  `json:"priority"`
}

// UpdateTodoDTO carries a partial update. An empty dueDate string clears the
// due date; a missing or null one leaves it alone.
type UpdateTodoDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	DueDate     *util.Date `json:"dueDate"`
	Priority    *Priority  `json:"priority"`
}

func (dto UpdateTodoDTO) ApplyTo(t *Todo, now time.Time) {
	if dto.Title != nil {
		t.Title = *dto.Title
	}
	if dto.Description != nil {
		t.Description = *dto.Description
	}
	if dto.DueDate != nil {
		t.DueDate = *dto.DueDate
	}
	if dto.Priority != nil {
		t.Priority = *dto.Priority
	}
	if dto.Completed != nil {
		t.setCompleted(*dto.Completed, now)
	}
}
