package todo

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/chronos-planner/internal/config"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

type TodoService interface {
	CreateTodo(ctx context.Context, ownerID string, dto CreateTodoDTO) (*Todo, error)
	ListTodos(ctx context.Context, ownerID string) ([]*Todo, error)
	ListTodosInRange(ctx context.Context, ownerID string, start, end util.Date) ([]*Todo, error)
	GetTodo(ctx context.Context, ownerID, id string) (*Todo, error)
	UpdateTodo(ctx context.Context, ownerID, id string, dto UpdateTodoDTO) (*Todo, error)
	ToggleTodo(ctx context.Context, ownerID, id string) (*Todo, error)
	DeleteTodo(ctx context.Context, ownerID, id string) error
}

type todoService struct {
	repo  TodoRepository
	clock util.Clock
}

func NewService(repo TodoRepository, clock util.Clock) TodoService {
	return &todoService{repo: repo, clock: clock}
}

func (s *todoService) CreateTodo(ctx context.Context, ownerID string, dto CreateTodoDTO) (*Todo, error) {
	log := config.WithContext(ctx)

	dto.Title = strings.TrimSpace(dto.Title)
	if dto.Title == "" {
		return nil, config.NewValidationError("title", "is required")
	}
	if dto.Priority != "" && !dto.Priority.IsValid() {
		return nil, config.NewValidationError("priority", "must be low, medium or high")
	}

	t, err := s.repo.Create(ctx, ownerID, dto)
	if err != nil {
		log.WithError(err).Error("Failed to create todo")
		return nil, err
	}

	log.WithField("todo_id", t.ID).Info("Todo created successfully")
	return t, nil
}

func (s *todoService) ListTodos(ctx context.Context, ownerID string) ([]*Todo, error) {
	todos, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list todos")
		return nil, err
	}
	return todos, nil
}

func (s *todoService) ListTodosInRange(ctx context.Context, ownerID string, start, end util.Date) ([]*Todo, error) {
	if end.Before(start) {
		return nil, config.NewValidationError("end", "must not be before start")
	}
	todos, err := s.repo.ListByDueDate(ctx, ownerID, start, end)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list todos by due date")
		return nil, err
	}
	return todos, nil
}

func (s *todoService) GetTodo(ctx context.Context, ownerID, id string) (*Todo, error) {
	t, err := s.repo.FindByIdAndUserId(ctx, id, ownerID)
	if err != nil {
		s.logLookupError(ctx, err, id, ownerID)
		return nil, err
	}
	return t, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, ownerID, id string, dto UpdateTodoDTO) (*Todo, error) {
	if dto.Title != nil {
		trimmed := strings.TrimSpace(*dto.Title)
		if trimmed == "" {
			return nil, config.NewValidationError("title", "is required")
		}
		dto.Title = &trimmed
	}
	if dto.Priority != nil && !dto.Priority.IsValid() {
		return nil, config.NewValidationError("priority", "must be low, medium or high")
	}

	t, err := s.repo.Update(ctx, id, ownerID, func(t *Todo) {
		dto.ApplyTo(t, s.clock.Now())
	})
	if err != nil {
		s.logLookupError(ctx, err, id, ownerID)
		return nil, err
	}

	config.WithContext(ctx).WithField("todo_id", id).Info("Todo updated successfully")
	return t, nil
}

func (s *todoService) ToggleTodo(ctx context.Context, ownerID, id string) (*Todo, error) {
	t, err := s.repo.Update(ctx, id, ownerID, func(t *Todo) {
		t.setCompleted(!t.Completed, s.clock.Now())
	})
	if err != nil {
		s.logLookupError(ctx, err, id, ownerID)
		return nil, err
	}

	config.WithContext(ctx).WithFields(logrus.Fields{
		"todo_id":   id,
		"completed": t.Completed,
	}).Info("Todo toggled")
	return t, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		s.logLookupError(ctx, err, id, ownerID)
		return err
	}

	config.WithContext(ctx).WithField("todo_id", id).Info("Todo deleted successfully")
	return nil
}

func (s *todoService) logLookupError(ctx context.Context, err error, id, ownerID string) {
	log := config.WithContext(ctx)
	if errors.Is(err, ErrTodoNotFound) {
		log.WithFields(logrus.Fields{
			"todo_id": id,
			"user_id": ownerID,
		}).Warn("Todo not found or does not belong to user")
		return
	}
	log.WithError(err).Error("Todo storage failure")
}
