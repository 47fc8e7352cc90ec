package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/DouglasTanno/TaskManagementAPI/internal/domain"
)

// MemoryUserRepository keeps users in a mutex-guarded slice. It is the
// default store when DATABASE_URL is not configured, mirroring the
// in-memory database the original deployment ran on.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  []*domain.User
	nextID int
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1}
}

func (r *MemoryUserRepository) Insert(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++
	clone := *u
	r.users = append(r.users, &clone)
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id int) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) GetByCredentials(_ context.Context, username, password string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Insertion order, first match wins: usernames are not unique.
	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) HasSuperUser(_ context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.IsSuperUser {
			return true, nil
		}
	}
	return false, nil
}

// MemoryTodoRepository keeps todos in a mutex-guarded slice. Every
// operation runs under the lock, so callers that read the max id and
// insert within one request cannot interleave in-process.
type MemoryTodoRepository struct {
	mu    sync.RWMutex
	todos []*domain.Todo
}

func NewMemoryTodoRepository() *MemoryTodoRepository {
	return &MemoryTodoRepository{}
}

func (r *MemoryTodoRepository) Insert(_ context.Context, t *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *t
	r.todos = append(r.todos, &clone)
	return nil
}

func (r *MemoryTodoRepository) Update(_ context.Context, t *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.todos {
		if existing.ID == t.ID {
			clone := *t
			r.todos[i] = &clone
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryTodoRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.todos {
		if existing.ID == id {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryTodoRepository) List(_ context.Context) ([]*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		clone := *t
		res = append(res, &clone)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (r *MemoryTodoRepository) ListByStatus(_ context.Context, status domain.TodoStatus) ([]*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Todo, 0)
	for _, t := range r.todos {
		if t.Status == status {
			clone := *t
			res = append(res, &clone)
		}
	}
	return res, nil
}

func (r *MemoryTodoRepository) MaxID(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	max := 0
	for _, t := range r.todos {
		if t.ID > max {
			max = t.ID
		}
	}
	return max, nil
}

func (r *MemoryTodoRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.todos), nil
}
