package todo

import (
	"context"
	"errors"

	"github.com/saulo-duarte/chronos-planner/internal/store"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

var ErrTodoNotFound = errors.New("todo not found")

type TodoRepository interface {
	Create(ctx context.Context, ownerID string, dto CreateTodoDTO) (*Todo, error)
	FindByIdAndUserId(ctx context.Context, id, ownerID string) (*Todo, error)
	ListByUser(ctx context.Context, ownerID string) ([]*Todo, error)
	ListByDueDate(ctx context.Context, ownerID string, start, end util.Date) ([]*Todo, error)
	Update(ctx context.Context, id, ownerID string, apply func(*Todo)) (*Todo, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type todoRepository struct {
	todos *store.Collection[Todo]
	clock util.Clock
	newID util.IDGenerator
}

func NewTodoRepository(todos *store.Collection[Todo], clock util.Clock, newID util.IDGenerator) TodoRepository {
	return &todoRepository{todos: todos, clock: clock, newID: newID}
}

func (r *todoRepository) Create(ctx context.Context, ownerID string, dto CreateTodoDTO) (*Todo, error) {
	now := r.clock.Now()
	t := Todo{
		ID:          r.newID(),
		OwnerID:     ownerID,
		Title:       dto.Title,
		Description: dto.Description,
		DueDate:     dto.DueDate,
		Priority:    dto.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}

	err := r.todos.Update(ctx, func(todos []Todo) ([]Todo, error) {
		return append(todos, t), nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *todoRepository) FindByIdAndUserId(ctx context.Context, id, ownerID string) (*Todo, error) {
	todos, err := r.todos.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range todos {
		if todos[i].ID == id && todos[i].OwnerID == ownerID {
			return &todos[i], nil
		}
	}
	return nil, ErrTodoNotFound
}

func (r *todoRepository) ListByUser(ctx context.Context, ownerID string) ([]*Todo, error) {
	return r.filter(ctx, func(t *Todo) bool {
		return t.OwnerID == ownerID
	})
}

// ListByDueDate returns todos due within [start, end]. Unscheduled todos are
// left out.
func (r *todoRepository) ListByDueDate(ctx context.Context, ownerID string, start, end util.Date) ([]*Todo, error) {
	return r.filter(ctx, func(t *Todo) bool {
		if t.OwnerID != ownerID || t.DueDate.IsZero() {
			return false
		}
		return !t.DueDate.Before(start) && !t.DueDate.After(end)
	})
}

// Update runs apply on the stored todo under the collection lock and stamps
// UpdatedAt.
func (r *todoRepository) Update(ctx context.Context, id, ownerID string, apply func(*Todo)) (*Todo, error) {
	var updated Todo
	err := r.todos.Update(ctx, func(todos []Todo) ([]Todo, error) {
		for i := range todos {
			if todos[i].ID != id || todos[i].OwnerID != ownerID {
				continue
			}
			apply(&todos[i])
			todos[i].UpdatedAt = r.clock.Now()
			updated = todos[i]
			return todos, nil
		}
		return nil, ErrTodoNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *todoRepository) Delete(ctx context.Context, id, ownerID string) error {
	return r.todos.Update(ctx, func(todos []Todo) ([]Todo, error) {
		for i := range todos {
			if todos[i].ID == id && todos[i].OwnerID == ownerID {
				return append(todos[:i], todos[i+1:]...), nil
			}
		}
		return nil, ErrTodoNotFound
	})
}

func (r *todoRepository) filter(ctx context.Context, keep func(*Todo) bool) ([]*Todo, error) {
	todos, err := r.todos.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Todo, 0)
	for i := range todos {
		if keep(&todos[i]) {
			out = append(out, &todos[i])
		}
	}
	return out, nil
}
