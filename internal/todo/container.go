package todo

import (
	"github.com/saulo-duarte/chronos-planner/internal/store"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

type TodoContainer struct {
	Handler *Handler
	Service TodoService
}

func NewTodoContainer(backend store.Backend, clock util.Clock, newID util.IDGenerator) *TodoContainer {
	repo := NewTodoRepository(store.NewCollection[Todo](backend, store.TodosCollection), clock, newID)
	service := NewService(repo, clock)

	return &TodoContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
