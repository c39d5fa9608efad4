package container

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/chronos-planner/internal/auth"
	"github.com/saulo-duarte/chronos-planner/internal/config"
	"github.com/saulo-duarte/chronos-planner/internal/event"
	"github.com/saulo-duarte/chronos-planner/internal/habit"
	"github.com/saulo-duarte/chronos-planner/internal/store"
	"github.com/saulo-duarte/chronos-planner/internal/todo"
	"github.com/saulo-duarte/chronos-planner/internal/user"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

type Container struct {
	Config         *config.Config
	Backend        store.Backend
	UserContainer  *user.UserContainer
	HabitContainer *habit.HabitContainer
	TodoContainer  *todo.TodoContainer
	EventContainer *event.EventContainer
}

// New wires every feature onto the storage backend selected by cfg.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	config.Init(cfg.LogLevel)
	auth.Init()

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	config.Logger().WithField("driver", cfg.StorageDriver).Info("Storage ready")

	return Build(cfg, backend, util.SystemClock, util.NewUUID), nil
}

// Build assembles the feature containers on an already opened backend.
func Build(cfg *config.Config, backend store.Backend, clock util.Clock, newID util.IDGenerator) *Container {
	return &Container{
		Config:         cfg,
		Backend:        backend,
		UserContainer:  user.NewUserContainer(backend, auth.NewPasswordHasher(), cfg.JWTTTL, clock, newID),
		HabitContainer: habit.NewHabitContainer(backend, clock, newID),
		TodoContainer:  todo.NewTodoContainer(backend, clock, newID),
		EventContainer: event.NewEventContainer(backend, clock, newID),
	}
}

func (c *Container) Close() error {
	return c.Backend.Close()
}

func openBackend(ctx context.Context, cfg *config.Config) (store.Backend, error) {
	switch cfg.StorageDriver {
	case config.StorageFile:
		return store.NewFileBackend(cfg.DataDir)
	case config.StorageSQLite, config.StoragePostgres:
		db, err := config.Connect(ctx, cfg.StorageDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return store.NewGormBackend(db)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
