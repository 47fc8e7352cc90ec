package handlers

import (
	"github.com/DouglasTanno/TaskManagementAPI/internal/service"

	"github.com/gin-gonic/gin"
)

// IdentityCtxKey is the gin context key under which the auth middleware
// stores the verified caller identity.
const IdentityCtxKey = "identity"

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Handler carries the services shared by all HTTP handlers.
type Handler struct {
	Todos  *service.TodoService
	Users  *service.UserService
	Tokens *service.TokenManager
}

func NewHandler(todos *service.TodoService, users *service.UserService, tokens *service.TokenManager) *Handler {
	return &Handler{
		Todos:  todos,
		Users:  users,
		Tokens: tokens,
	}
}

// identityFrom extracts the verified identity placed in the context by
// the auth middleware.
func identityFrom(c *gin.Context) (*service.Identity, bool) {
	val, ok := c.Get(IdentityCtxKey)
	if !ok {
		return nil, false
	}
	ident, ok := val.(*service.Identity)
	return ident, ok
}
