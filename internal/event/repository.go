package event

import (
	"context"
	"errors"
	"time"

	"github.com/saulo-duarte/chronos-planner/internal/store"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	Create(ctx context.Context, ownerID string, dto CreateEventDTO) (*Event, error)
	FindByIdAndUserId(ctx context.Context, id, ownerID string) (*Event, error)
	ListByUser(ctx context.Context, ownerID string) ([]*Event, error)
	ListOverlapping(ctx context.Context, ownerID string, start, end time.Time) ([]*Event, error)
	Update(ctx context.Context, id, ownerID string, dto UpdateEventDTO) (*Event, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type eventRepository struct {
	events *store.Collection[Event]
	clock  util.Clock
	newID  util.IDGenerator
}

func NewEventRepository(events *store.Collection[Event], clock util.Clock, newID util.IDGenerator) EventRepository {
	return &eventRepository{events: events, clock: clock, newID: newID}
}

func (r *eventRepository) Create(ctx context.Context, ownerID string, dto CreateEventDTO) (*Event, error) {
	now := r.clock.Now()
	e := Event{
		ID:          r.newID(),
		OwnerID:     ownerID,
		Title:       dto.Title,
		Description: dto.Description,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		Duration:    dto.Duration,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := r.events.Update(ctx, func(events []Event) ([]Event, error) {
		return append(events, e), nil
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) FindByIdAndUserId(ctx context.Context, id, ownerID string) (*Event, error) {
	events, err := r.events.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id && events[i].OwnerID == ownerID {
			return &events[i], nil
		}
	}
	return nil, ErrEventNotFound
}

func (r *eventRepository) ListByUser(ctx context.Context, ownerID string) ([]*Event, error) {
	return r.filter(ctx, func(e *Event) bool {
		return e.OwnerID == ownerID
	})
}

func (r *eventRepository) ListOverlapping(ctx context.Context, ownerID string, start, end time.Time) ([]*Event, error) {
	return r.filter(ctx, func(e *Event) bool {
		return e.OwnerID == ownerID && e.Overlaps(start, end)
	})
}

func (r *eventRepository) Update(ctx context.Context, id, ownerID string, dto UpdateEventDTO) (*Event, error) {
	var updated Event
	err := r.events.Update(ctx, func(events []Event) ([]Event, error) {
		for i := range events {
			if events[i].ID != id || events[i].OwnerID != ownerID {
				continue
			}
			dto.ApplyTo(&events[i])
			events[i].UpdatedAt = r.clock.Now()
			updated = events[i]
			return events, nil
		}
		return nil, ErrEventNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *eventRepository) Delete(ctx context.Context, id, ownerID string) error {
	return r.events.Update(ctx, func(events []Event) ([]Event, error) {
		for i := range events {
			if events[i].ID == id && events[i].OwnerID == ownerID {
				return append(events[:i], events[i+1:]...), nil
			}
		}
		return nil, ErrEventNotFound
	})
}

func (r *eventRepository) filter(ctx context.Context, keep func(*Event) bool) ([]*Event, error) {
	events, err := r.events.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Event, 0)
	for i := range events {
		if keep(&events[i]) {
			out = append(out, &events[i])
		}
	}
	return out, nil
}
