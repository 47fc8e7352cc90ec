package middleware

import (
	"net/http"
	"strings"

	"github.com/DouglasTanno/TaskManagementAPI/internal/http/handlers"
	"github.com/DouglasTanno/TaskManagementAPI/internal/service"

	"github.com/gin-gonic/gin"
)

// JWT authenticates the request from its bearer token. On success the
// verified identity is stored in the gin context under
// handlers.IdentityCtxKey; handlers never touch raw claims.
func JWT(tokens *service.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ident, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(handlers.IdentityCtxKey, ident)
		c.Next()
	}
}
