package http

import (
	"time"

	"github.com/DouglasTanno/TaskManagementAPI/internal/config"
	"github.com/DouglasTanno/TaskManagementAPI/internal/http/handlers"
	"github.com/DouglasTanno/TaskManagementAPI/internal/http/middleware"
	"github.com/DouglasTanno/TaskManagementAPI/internal/repository"
	"github.com/DouglasTanno/TaskManagementAPI/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Stores bundles the persistence gateways the routes are built on. The
// pool is nil when the in-memory store is in use.
type Stores struct {
	Users repository.UserRepository
	Todos repository.TodoRepository
	Pool  *pgxpool.Pool
}

// RegisterRoutes wires handlers, auth middleware and rate limiters onto
// the engine.
func RegisterRoutes(r *gin.Engine, stores Stores, cfg *config.Config) {
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	h := handlers.NewHandler(
		service.NewTodoService(stores.Todos),
		service.NewUserService(stores.Users),
		tokens,
	)
	healthHandler := handlers.NewHealthHandler(stores.Pool)

	r.Use(middleware.Metrics())

	// Health checks bypass rate limiting.
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	apiWindow := time.Duration(cfg.APIRateWindow) * time.Second
	authWindow := time.Duration(cfg.AuthRateWindow) * time.Second

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit(cfg.AuthRateLimit, authWindow))
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", middleware.JWT(tokens), h.Register)
	}

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.APIRateLimit, apiWindow))
	api.Use(middleware.JWT(tokens))
	{
		api.GET("/todos", h.GetTodos)
		api.GET("/todos/:id", h.GetTodoByID)
		api.POST("/todos", h.CreateTodo)
		api.PUT("/todos/:id", h.UpdateTodo)
		api.DELETE("/todos/:id", h.DeleteTodo)
	}
}
