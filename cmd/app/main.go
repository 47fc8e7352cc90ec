package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DouglasTanno/TaskManagementAPI/internal/config"
	"github.com/DouglasTanno/TaskManagementAPI/internal/db"
	httpServer "github.com/DouglasTanno/TaskManagementAPI/internal/http"
	"github.com/DouglasTanno/TaskManagementAPI/internal/http/middleware"
	"github.com/DouglasTanno/TaskManagementAPI/internal/logger"
	"github.com/DouglasTanno/TaskManagementAPI/internal/repository"
	"github.com/DouglasTanno/TaskManagementAPI/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_JSON") == "true")
	cfg := config.Load()

	stores := buildStores(cfg)
	if stores.Pool != nil {
		defer stores.Pool.Close()
	}

	if err := seed(context.Background(), stores); err != nil {
		logger.Fatal("seeding failed", "error", err)
	}

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	r := gin.Default()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	httpServer.RegisterRoutes(r, stores, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// buildStores selects the persistence backend: postgres when
// DATABASE_URL is set, otherwise the in-memory store the original
// deployment ran on.
func buildStores(cfg *config.Config) httpServer.Stores {
	if cfg.DatabaseURL != "" {
		pool := db.Connect(cfg.DatabaseURL)
		return httpServer.Stores{
			Users: repository.NewPostgresUserRepository(pool),
			Todos: repository.NewPostgresTodoRepository(pool),
			Pool:  pool,
		}
	}

	logger.Info("DATABASE_URL not set, using in-memory store")
	return httpServer.Stores{
		Users: repository.NewMemoryUserRepository(),
		Todos: repository.NewMemoryTodoRepository(),
	}
}

// seed creates the bootstrap super user and the example todos on first
// run. Both checks keep restarts idempotent.
func seed(ctx context.Context, stores httpServer.Stores) error {
	users := service.NewUserService(stores.Users)
	todos := service.NewTodoService(stores.Todos)

	hasSuper, err := users.HasSuperUser(ctx)
	if err != nil {
		return err
	}
	if !hasSuper {
		if err := users.CreateSuperUser(ctx); err != nil {
			return err
		}
		logger.Info("super user created")
	}

	count, err := stores.Todos.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		if err := todos.CreateTodoExamples(ctx); err != nil {
			return err
		}
		logger.Info("example todos created")
	}
	return nil
}
