package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/DouglasTanno/TaskManagementAPI/internal/domain"
	"github.com/DouglasTanno/TaskManagementAPI/internal/logger"
	"github.com/DouglasTanno/TaskManagementAPI/internal/repository"
	"github.com/DouglasTanno/TaskManagementAPI/internal/service"

	"github.com/gin-gonic/gin"
)

type TodoCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GetTodos lists all todos, optionally filtered by the status query
// parameter. The filter string must match one of the wire names
// exactly; anything else is a 400 naming the allowed values.
func (h *Handler) GetTodos(c *gin.Context) {
	ctx := c.Request.Context()

	if status := c.Query("status"); status != "" {
		parsed, err := domain.ParseTodoStatus(status)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: fmt.Sprintf("Status inválido: %s. Valores permitidos: %s.", status, domain.AllowedStatusNames()),
			})
			return
		}

		todos, err := h.Todos.GetTodosByStatus(ctx, parsed)
		if err != nil {
			logger.Error("todo listing by status failed", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
			return
		}
		c.JSON(http.StatusOK, todos)
		return
	}

	todos, err := h.Todos.GetAllTodos(ctx)
	if err != nil {
		logger.Error("todo listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// GetTodoByID returns a single todo or 404.
func (h *Handler) GetTodoByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	todo, err := h.Todos.GetTodoByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Error("todo lookup failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
		return
	}
	c.JSON(http.StatusOK, todo)
}

// CreateTodo creates a todo owned by the authenticated caller. Title
// and description must contain something other than whitespace; the
// violation is answered as a 400, never surfaced as a server fault.
func (h *Handler) CreateTodo(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	var req TodoCreateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Título e descrição são obrigatórios."})
		return
	}

	todo, err := h.Todos.AddTodo(c.Request.Context(), req.Title, req.Description, ident.UserID)
	if err != nil {
		logger.Error("todo creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/todos/%d", todo.ID))
	c.JSON(http.StatusCreated, todo)
}

// UpdateTodo applies a partial update to a todo the caller owns.
func (h *Handler) UpdateTodo(c *gin.Context) {
	_, todo, ok := h.authorizeTodoMutation(c)
	if !ok {
		return
	}

	var patch service.TodoPatch
	if err := c.BindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := h.Todos.UpdateTodo(c.Request.Context(), todo, patch); err != nil {
		logger.Error("todo update failed", "id", todo.ID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
		return
	}
	c.JSON(http.StatusOK, todo)
}

// DeleteTodo removes a todo the caller owns.
func (h *Handler) DeleteTodo(c *gin.Context) {
	ident, todo, ok := h.authorizeTodoMutation(c)
	if !ok {
		return
	}

	if err := h.Todos.RemoveTodo(c.Request.Context(), todo, ident.UserID); err != nil {
		logger.Error("todo deletion failed", "id", todo.ID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// authorizeTodoMutation runs the shared policy chain for mutating
// operations: authenticated caller, existing todo, caller is the owner.
// It writes the failure response itself and reports ok=false.
func (h *Handler) authorizeTodoMutation(c *gin.Context) (*service.Identity, *domain.Todo, bool) {
	ident, ok := identityFrom(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return nil, nil, false
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return nil, nil, false
	}

	todo, err := h.Todos.GetTodoByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return nil, nil, false
		}
		logger.Error("todo lookup failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
		return nil, nil, false
	}

	if todo.UserID != ident.UserID {
		c.Status(http.StatusForbidden)
		return nil, nil, false
	}
	return ident, todo, true
}
