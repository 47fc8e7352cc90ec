package handlers

import (
	"errors"
	"net/http"

	"github.com/DouglasTanno/TaskManagementAPI/internal/logger"
	"github.com/DouglasTanno/TaskManagementAPI/internal/service"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type JwtResponse struct {
	Token string `json:"token"`
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	IsSuperUser bool   `json:"isSuperUser"`
}

// Login validates the submitted credentials and answers with a signed
// bearer token. Bad credentials are a plain 401 with no body detail.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	user, err := h.Users.ValidateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.Status(http.StatusUnauthorized)
			return
		}
		logger.Error("credential validation failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		logger.Error("token issuance failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
		return
	}

	c.JSON(http.StatusOK, JwtResponse{Token: token})
}

// Register creates a new account on behalf of the authenticated caller.
// Only a super user may register; the service's authorization failure
// comes back as a 400 carrying its message.
func (h *Handler) Register(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	var req RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Username and Password are required."})
		return
	}

	err := h.Users.RegisterUser(c.Request.Context(), req.Username, req.Password, req.IsSuperUser, ident.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotSuperUser) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
		logger.Error("user registration failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuário cadastrado com sucesso."})
}
