package user

import (
	"time"

	"github.com/saulo-duarte/chronos-planner/internal/auth"
	"github.com/saulo-duarte/chronos-planner/internal/store"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

type UserContainer struct {
	Handler *Handler
	Service UserService
	Repo    UserRepository
}

func NewUserContainer(backend store.Backend, hasher *auth.PasswordHasher, tokenTTL time.Duration, clock util.Clock, newID util.IDGenerator) *UserContainer {
	repo := NewUserRepository(store.NewCollection[User](backend, store.UsersCollection))
	service := NewService(repo, hasher, tokenTTL, clock, newID)

	return &UserContainer{
		Handler: NewHandler(service),
		Service: service,
		Repo:    repo,
	}
}
