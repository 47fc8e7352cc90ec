package service

import (
	"context"
	"testing"

	"github.com/DouglasTanno/TaskManagementAPI/internal/domain"
	"github.com/DouglasTanno/TaskManagementAPI/internal/repository"
)

func newTodoService(t *testing.T) *TodoService {
	t.Helper()
	return NewTodoService(repository.NewMemoryTodoRepository())
}

func TestAddTodoDefaults(t *testing.T) {
	s := newTodoService(t)
	ctx := context.Background()

	todo, err := s.AddTodo(ctx, "Primeira tarefa", "Descrição", 3)
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}

	if todo.ID != 1 {
		t.Fatalf("id = %d; want 1 on empty store", todo.ID)
	}
	if todo.Status != domain.StatusPending {
		t.Fatalf("status = %v; want Pendente", todo.Status)
	}
	if !todo.CreatedAt.Equal(domain.Today().Time) {
		t.Fatalf("createdAt = %v; want today", todo.CreatedAt)
	}
	if todo.UserID != 3 {
		t.Fatalf("userId = %d; want 3", todo.UserID)
	}
}

func TestAddTodoSequentialIDs(t *testing.T) {
	s := newTodoService(t)
	ctx := context.Background()

	first, err := s.AddTodo(ctx, "a", "b", 1)
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}
	second, err := s.AddTodo(ctx, "c", "d", 1)
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}

	if second.ID != first.ID+1 {
		t.Fatalf("ids %d, %d; want strictly increasing by one", first.ID, second.ID)
	}
}

func TestGetAllTodosOrderedByID(t *testing.T) {
	s := newTodoService(t)
	ctx := context.Background()

	for _, title := range []string{"um", "dois", "três"} {
		if _, err := s.AddTodo(ctx, title, "descrição", 1); err != nil {
			t.Fatalf("AddTodo: %v", err)
		}
	}

	todos, err := s.GetAllTodos(ctx)
	if err != nil {
		t.Fatalf("GetAllTodos: %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("len = %d; want 3", len(todos))
	}
	for i := 1; i < len(todos); i++ {
		if todos[i-1].ID >= todos[i].ID {
			t.Fatalf("ids not ascending: %d before %d", todos[i-1].ID, todos[i].ID)
		}
	}
}

func TestGetAllTodosEmptyStore(t *testing.T) {
	s := newTodoService(t)

	todos, err := s.GetAllTodos(context.Background())
	if err != nil {
		t.Fatalf("GetAllTodos: %v", err)
	}
	if len(todos) != 0 {
		t.Fatalf("len = %d; want 0", len(todos))
	}
}

func TestUpdateTodoEmptyPatchIsIdempotent(t *testing.T) {
	s := newTodoService(t)
	ctx := context.Background()

	todo, err := s.AddTodo(ctx, "Título", "Descrição", 1)
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}
	before := *todo

	if err := s.UpdateTodo(ctx, todo, TodoPatch{}); err != nil {
		t.Fatalf("UpdateTodo: %v", err)
	}

	if *todo != before {
		t.Fatalf("empty patch changed the todo: %+v != %+v", *todo, before)
	}
}

func TestUpdateTodoStatusOnly(t *testing.T) {
	s := newTodoService(t)
	ctx := context.Background()

	todo, err := s.AddTodo(ctx, "Título", "Descrição", 1)
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}

	status := domain.StatusCompleted
	if err := s.UpdateTodo(ctx, todo, TodoPatch{Status: &status}); err != nil {
		t.Fatalf("UpdateTodo: %v", err)
	}

	if todo.Status != domain.StatusCompleted {
		t.Fatalf("status = %v; want Concluída", todo.Status)
	}
	if todo.Title != "Título" || todo.Description != "Descrição" {
		t.Fatal("status-only patch touched title or description")
	}
}

func TestUpdateTodoEmptyStringMeansNotProvided(t *testing.T) {
	s := newTodoService(t)
	ctx := context.Background()

	todo, err := s.AddTodo(ctx, "Título", "Descrição", 1)
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}

	empty := ""
	newDesc := "Outra descrição"
	patch := TodoPatch{Title: &empty, Description: &newDesc}
	if err := s.UpdateTodo(ctx, todo, patch); err != nil {
		t.Fatalf("UpdateTodo: %v", err)
	}

	if todo.Title != "Título" {
		t.Fatalf("empty title cleared the field: %q", todo.Title)
	}
	if todo.Description != "Outra descrição" {
		t.Fatalf("description = %q; want Outra descrição", todo.Description)
	}
}

func TestRemoveTodo(t *testing.T) {
	s := newTodoService(t)
	ctx := context.Background()

	todo, err := s.AddTodo(ctx, "Título", "Descrição", 1)
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}

	if err := s.RemoveTodo(ctx, todo, 1); err != nil {
		t.Fatalf("RemoveTodo: %v", err)
	}

	if _, err := s.GetTodoByID(ctx, todo.ID); err != repository.ErrNotFound {
		t.Fatalf("lookup after delete = %v; want ErrNotFound", err)
	}
}

func TestCreateTodoExamplesAndFilter(t *testing.T) {
	s := newTodoService(t)
	ctx := context.Background()

	if err := s.CreateTodoExamples(ctx); err != nil {
		t.Fatalf("CreateTodoExamples: %v", err)
	}

	all, err := s.GetAllTodos(ctx)
	if err != nil {
		t.Fatalf("GetAllTodos: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("seeded %d todos; want 3", len(all))
	}
	for _, todo := range all {
		if todo.UserID != 1 {
			t.Fatalf("example todo %d owned by %d; want 1", todo.ID, todo.UserID)
		}
	}

	pending, err := s.GetTodosByStatus(ctx, domain.StatusPending)
	if err != nil {
		t.Fatalf("GetTodosByStatus: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending count = %d; want 1", len(pending))
	}
	if pending[0].Title != "Exemplo de Tarefa 2" {
		t.Fatalf("pending todo = %q; want Exemplo de Tarefa 2", pending[0].Title)
	}
}
