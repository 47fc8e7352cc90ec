package repository

import (
	"context"
	"errors"

	"github.com/DouglasTanno/TaskManagementAPI/internal/domain"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// UserRepository is the persistence gateway for users.
type UserRepository interface {
	// Insert persists a new user and assigns its id.
	Insert(ctx context.Context, u *domain.User) error
	// GetByID returns the user with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id int) (*domain.User, error)
	// GetByCredentials returns the first user matching both username and
	// password, or ErrNotFound. Username uniqueness is not enforced, so
	// first match wins.
	GetByCredentials(ctx context.Context, username, password string) (*domain.User, error)
	// HasSuperUser reports whether any super user exists.
	HasSuperUser(ctx context.Context) (bool, error)
}

// TodoRepository is the persistence gateway for todos.
type TodoRepository interface {
	// Insert persists a todo under the id already set on it.
	Insert(ctx context.Context, t *domain.Todo) error
	// Update overwrites the stored todo with the same id.
	Update(ctx context.Context, t *domain.Todo) error
	// Delete removes the todo with the given id.
	Delete(ctx context.Context, id int) error
	// List returns all todos ascending by id.
	List(ctx context.Context) ([]*domain.Todo, error)
	// ListByStatus returns todos with the given status, in store order.
	ListByStatus(ctx context.Context, status domain.TodoStatus) ([]*domain.Todo, error)
	// MaxID returns the highest assigned todo id, 0 when empty.
	MaxID(ctx context.Context) (int, error)
	// Count returns the number of stored todos.
	Count(ctx context.Context) (int, error)
}
