package user

import (
	"context"
	"errors"

	"github.com/saulo-duarte/chronos-planner/internal/store"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

type UserRepository interface {
	// Create stores u unless another user already has the same email.
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

type userRepository struct {
	users *store.Collection[User]
}

func NewUserRepository(users *store.Collection[User]) UserRepository {
	return &userRepository{users: users}
}

func (r *userRepository) Create(ctx context.Context, u *User) error {
	return r.users.Update(ctx, func(users []User) ([]User, error) {
		for _, existing := range users {
			if existing.Email == u.Email {
				return nil, ErrUserExists
			}
		}
		return append(users, *u), nil
	})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.find(ctx, func(u *User) bool { return u.Email == email })
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.find(ctx, func(u *User) bool { return u.ID == id })
}

func (r *userRepository) find(ctx context.Context, match func(*User) bool) (*User, error) {
	users, err := r.users.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if match(&users[i]) {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}
