package event

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/chronos-planner/internal/config"
)

type EventService interface {
	CreateEvent(ctx context.Context, ownerID string, dto CreateEventDTO) (*Event, error)
	ListEvents(ctx context.Context, ownerID string) ([]*Event, error)
	ListEventsInWindow(ctx context.Context, ownerID string, start, end time.Time) ([]*Event, error)
	GetEvent(ctx context.Context, ownerID, id string) (*Event, error)
	UpdateEvent(ctx context.Context, ownerID, id string, dto UpdateEventDTO) (*Event, error)
	DeleteEvent(ctx context.Context, ownerID, id string) error
}

type eventService struct {
	repo EventRepository
}

func NewService(repo EventRepository) EventService {
	return &eventService{repo: repo}
}

func validateEvent(title string, start, end time.Time, duration int) error {
	switch {
	case strings.TrimSpace(title) == "":
		return config.NewValidationError("title", "is required")
	case start.IsZero():
		return config.NewValidationError("startDate", "is required")
	case end.IsZero():
		return config.NewValidationError("endDate", "is required")
	case end.Before(start):
		return config.NewValidationError("endDate", "must not be before startDate")
	case duration <= 0:
		return config.NewValidationError("duration", "must be a positive number of minutes")
	}
	return nil
}

func (s *eventService) CreateEvent(ctx context.Context, ownerID string, dto CreateEventDTO) (*Event, error) {
	log := config.WithContext(ctx)

	if err := validateEvent(dto.Title, dto.StartDate, dto.EndDate, dto.Duration); err != nil {
		return nil, err
	}
	dto.Title = strings.TrimSpace(dto.Title)

	e, err := s.repo.Create(ctx, ownerID, dto)
	if err != nil {
		log.WithError(err).Error("Failed to create event")
		return nil, err
	}

	log.WithField("event_id", e.ID).Info("Event created successfully")
	return e, nil
}

func (s *eventService) ListEvents(ctx context.Context, ownerID string) ([]*Event, error) {
	events, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list events")
		return nil, err
	}
	return events, nil
}

func (s *eventService) ListEventsInWindow(ctx context.Context, ownerID string, start, end time.Time) ([]*Event, error) {
	if end.Before(start) {
		return nil, config.NewValidationError("end", "must not be before start")
	}
	events, err := s.repo.ListOverlapping(ctx, ownerID, start, end)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list events in window")
		return nil, err
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, ownerID, id string) (*Event, error) {
	e, err := s.repo.FindByIdAndUserId(ctx, id, ownerID)
	if err != nil {
		log := config.WithContext(ctx)
		if errors.Is(err, ErrEventNotFound) {
			log.WithFields(logrus.Fields{
				"event_id": id,
				"user_id":  ownerID,
			}).Warn("Event not found or does not belong to user")
			return nil, ErrEventNotFound
		}
		log.WithError(err).Error("Error finding event by ID")
		return nil, err
	}
	return e, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, ownerID, id string, dto UpdateEventDTO) (*Event, error) {
	log := config.WithContext(ctx)

	existing, err := s.GetEvent(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	preview := *existing
	dto.ApplyTo(&preview)
	if err := validateEvent(preview.Title, preview.StartDate, preview.EndDate, preview.Duration); err != nil {
		return nil, err
	}
	if dto.Title != nil {
		trimmed := strings.TrimSpace(*dto.Title)
		dto.Title = &trimmed
	}

	updated, err := s.repo.Update(ctx, id, ownerID, dto)
	if err != nil {
		if !errors.Is(err, ErrEventNotFound) {
			log.WithError(err).Error("Failed to update event")
		}
		return nil, err
	}

	log.WithField("event_id", id).Info("Event updated successfully")
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, ownerID, id string) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			log.WithFields(logrus.Fields{
				"event_id": id,
				"user_id":  ownerID,
			}).Warn("Event not found or does not belong to user for deletion")
			return ErrEventNotFound
		}
		log.WithError(err).Error("Failed to delete event")
		return err
	}

	log.WithField("event_id", id).Info("Event deleted successfully")
	return nil
}
