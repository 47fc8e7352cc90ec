package service

import (
	"context"
	"time"

	"github.com/DouglasTanno/TaskManagementAPI/internal/domain"
	"github.com/DouglasTanno/TaskManagementAPI/internal/repository"
)

// TodoPatch is a partial update: nil fields mean "not provided". An
// empty string in Title or Description also counts as not provided,
// never as "clear the field".
type TodoPatch struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Status      *domain.TodoStatus `json:"status"`
}

// TodoService implements the data mechanics of todo CRUD. Policy
// decisions (authentication, ownership, input validation) belong to the
// HTTP layer; this service assumes its inputs were already admitted.
type TodoService struct {
	todos repository.TodoRepository
}

func NewTodoService(todos repository.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

// GetAllTodos returns every todo ascending by id.
func (s *TodoService) GetAllTodos(ctx context.Context) ([]*domain.Todo, error) {
	return s.todos.List(ctx)
}

// GetTodosByStatus returns todos with the given status in store order.
func (s *TodoService) GetTodosByStatus(ctx context.Context, status domain.TodoStatus) ([]*domain.Todo, error) {
	return s.todos.ListByStatus(ctx, status)
}

// GetTodoByID returns the todo with the given id, searching the full
// listing, or repository.ErrNotFound.
func (s *TodoService) GetTodoByID(ctx context.Context, id int) (*domain.Todo, error) {
	all, err := s.todos.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range all {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repository.ErrNotFound
}

// AddTodo creates a todo owned by ownerID. The id is one greater than
// the current maximum (1 on an empty store), the status starts Pending
// and CreatedAt is the creation date. Two requests racing here can
// compute the same id; the in-memory store avoids that in-process, the
// pattern itself is inherited and documented rather than redesigned.
func (s *TodoService) AddTodo(ctx context.Context, title, description string, ownerID int) (*domain.Todo, error) {
	maxID, err := s.todos.MaxID(ctx)
	if err != nil {
		return nil, err
	}

	todo := &domain.Todo{
		ID:          maxID + 1,
		Title:       title,
		Description: description,
		CreatedAt:   domain.Today(),
		Status:      domain.StatusPending,
		UserID:      ownerID,
	}

	if err := s.todos.Insert(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// UpdateTodo merges the patch into todo field by field and persists the
// result. Absent or empty fields leave the stored value untouched.
func (s *TodoService) UpdateTodo(ctx context.Context, todo *domain.Todo, patch TodoPatch) error {
	if patch.Title != nil && *patch.Title != "" {
		todo.Title = *patch.Title
	}
	if patch.Description != nil && *patch.Description != "" {
		todo.Description = *patch.Description
	}
	if patch.Status != nil {
		todo.Status = *patch.Status
	}
	return s.todos.Update(ctx, todo)
}

// RemoveTodo deletes the todo. The ownership decision was already made
// by the caller.
func (s *TodoService) RemoveTodo(ctx context.Context, todo *domain.Todo, requestingUserID int) error {
	return s.todos.Delete(ctx, todo.ID)
}

// CreateTodoExamples seeds three fixed example todos owned by user 1.
// Bootstrap only; callers check the store is empty first.
func (s *TodoService) CreateTodoExamples(ctx context.Context) error {
	examples := []*domain.Todo{
		{
			Title:       "Exemplo de Tarefa 1",
			Description: "Descrição da primeira tarefa",
			CreatedAt:   domain.NewDate(2023, time.December, 25),
			Status:      domain.StatusInProgress,
			UserID:      1,
		},
		{
			Title:       "Exemplo de Tarefa 2",
			Description: "Descrição da segunda tarefa",
			CreatedAt:   domain.NewDate(2024, time.January, 1),
			Status:      domain.StatusPending,
			UserID:      1,
		},
		{
			Title:       "Exemplo de Tarefa 3",
			Description: "Descrição da terceira tarefa",
			CreatedAt:   domain.NewDate(2024, time.February, 15),
			Status:      domain.StatusCompleted,
			UserID:      1,
		},
	}

	for _, todo := range examples {
		maxID, err := s.todos.MaxID(ctx)
		if err != nil {
			return err
		}
		todo.ID = maxID + 1
		if err := s.todos.Insert(ctx, todo); err != nil {
			return err
		}
	}
	return nil
}
