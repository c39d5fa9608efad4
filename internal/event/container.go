package event

import (
	"github.com/saulo-duarte/chronos-planner/internal/store"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

type EventContainer struct {
	Handler *Handler
	Service EventService
}

func NewEventContainer(backend store.Backend, clock util.Clock, newID util.IDGenerator) *EventContainer {
	repo := NewEventRepository(store.NewCollection[Event](backend, store.EventsCollection), clock, newID)
	service := NewService(repo)

	return &EventContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
