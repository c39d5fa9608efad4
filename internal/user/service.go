package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/saulo-duarte/chronos-planner/internal/auth"
	"github.com/saulo-duarte/chronos-planner/internal/config"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const minPasswordLength = 6

type UserService interface {
	Register(ctx context.Context, dto CredentialsDTO) (*AuthResponse, error)
	Login(ctx context.Context, dto CredentialsDTO) (*AuthResponse, error)
	Me(ctx context.Context, userID string) (*MeResponse, error)
}

type userService struct {
	repo     UserRepository
	hasher   *auth.PasswordHasher
	tokenTTL time.Duration
	clock    util.Clock
	newID    util.IDGenerator
}

func NewService(repo UserRepository, hasher *auth.PasswordHasher, tokenTTL time.Duration, clock util.Clock, newID util.IDGenerator) UserService {
	return &userService{
		repo:     repo,
		hasher:   hasher,
		tokenTTL: tokenTTL,
		clock:    clock,
		newID:    newID,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, dto CredentialsDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	email := normalizeEmail(dto.Email)
	if !emailPattern.MatchString(email) {
		return nil, config.NewValidationError("email", "invalid email format")
	}
	if len(dto.Password) < minPasswordLength {
		return nil, config.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if len(dto.Password) > auth.MaxPasswordBytes {
		return nil, config.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", auth.MaxPasswordBytes))
	}

	hash, err := s.hasher.Hash(dto.Password)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, err
	}

	now := s.clock.Now()
	u := &User{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrUserExists) {
			log.WithField("email", email).Warn("Registration with existing email")
			return nil, ErrUserExists
		}
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return s.issue(u)
}

func (s *userService) Login(ctx context.Context, dto CredentialsDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByEmail(ctx, normalizeEmail(dto.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Warn("Login attempt for unknown email")
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to look up user")
		return nil, err
	}
	if !s.hasher.Verify(dto.Password, u.PasswordHash) {
		log.WithField("user_id", u.ID).Warn("Login attempt with wrong password")
		return nil, ErrInvalidCredentials
	}

	log.WithField("user_id", u.ID).Info("User logged in")
	return s.issue(u)
}

func (s *userService) Me(ctx context.Context, userID string) (*MeResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			config.WithContext(ctx).WithError(err).Error("Failed to look up user")
		}
		return nil, err
	}
	return &MeResponse{UserID: u.ID, Email: u.Email}, nil
}

func (s *userService) issue(u *User) (*AuthResponse, error) {
	token, err := auth.GenerateJWT(u.ID, u.Email, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{User: u.Public(), Token: token}, nil
}
