package config

import (
	"os"
	"strconv"

	"github.com/DouglasTanno/TaskManagementAPI/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string

	// Token settings, all required.
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	// Optional Redis for the rate limiter; empty addr disables it.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Fixed-window rate limits, in requests per window seconds.
	APIRateLimit   int
	APIRateWindow  int
	AuthRateLimit  int
	AuthRateWindow int
}

// Load reads configuration from the environment, after loading .env if
// present. Missing token settings are fatal; DATABASE_URL is optional
// and an empty value selects the in-memory store.
func Load() *Config {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		logger.Fatal("JWT_ISSUER is not set")
	}

	jwtAudience := os.Getenv("JWT_AUDIENCE")
	if jwtAudience == "" {
		logger.Fatal("JWT_AUDIENCE is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	return &Config{
		AppPort:        port,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      jwtSecret,
		JWTIssuer:      jwtIssuer,
		JWTAudience:    jwtAudience,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		APIRateLimit:   intEnv("API_RATE_LIMIT", 60),
		APIRateWindow:  intEnv("API_RATE_WINDOW_SECONDS", 60),
		AuthRateLimit:  intEnv("AUTH_RATE_LIMIT", 5),
		AuthRateWindow: intEnv("AUTH_RATE_WINDOW_SECONDS", 60),
	}
}

func intEnv(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
