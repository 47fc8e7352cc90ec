package service

import (
	"context"
	"errors"

	"github.com/DouglasTanno/TaskManagementAPI/internal/domain"
	"github.com/DouglasTanno/TaskManagementAPI/internal/repository"
)

var (
	// ErrInvalidCredentials signals that no user matches the submitted
	// username and password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotSuperUser signals a registration attempt by a caller without
	// the super-user privilege. The message is part of the API surface.
	ErrNotSuperUser = errors.New("Somente um 'superuser' pode cadastrar novos usuários")
)

// UserService implements credential validation and privileged
// registration against the user gateway.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// ValidateUser returns the first user matching both fields exactly, or
// ErrInvalidCredentials. Comparison is plaintext equality, inherited
// from the original system.
func (s *UserService) ValidateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

// RegisterUser creates a new account on behalf of requestingUserID.
// Only an existing super user may register; the new account is stored
// exactly as given, so a super user can mint another super user.
func (s *UserService) RegisterUser(ctx context.Context, username, password string, isSuperUser bool, requestingUserID int) error {
	current, err := s.users.GetByID(ctx, requestingUserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotSuperUser
		}
		return err
	}
	if !current.IsSuperUser {
		return ErrNotSuperUser
	}

	return s.users.Insert(ctx, &domain.User{
		Username:    username,
		Password:    password,
		IsSuperUser: isSuperUser,
	})
}

// CreateSuperUser creates the fixed bootstrap account. Callers are
// responsible for checking HasSuperUser first.
func (s *UserService) CreateSuperUser(ctx context.Context) error {
	return s.users.Insert(ctx, &domain.User{
		Username:    "su",
		Password:    "password",
		IsSuperUser: true,
	})
}

// HasSuperUser reports whether a super user already exists; used by the
// bootstrap path to keep CreateSuperUser idempotent.
func (s *UserService) HasSuperUser(ctx context.Context) (bool, error) {
	return s.users.HasSuperUser(ctx)
}
