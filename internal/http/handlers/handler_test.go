package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DouglasTanno/TaskManagementAPI/internal/config"
	"github.com/DouglasTanno/TaskManagementAPI/internal/domain"
	apihttp "github.com/DouglasTanno/TaskManagementAPI/internal/http"
	"github.com/DouglasTanno/TaskManagementAPI/internal/repository"
	"github.com/DouglasTanno/TaskManagementAPI/internal/service"

	"github.com/gin-gonic/gin"
)

type fixture struct {
	router *gin.Engine
	users  repository.UserRepository
	todos  repository.TodoRepository
	tokens *service.TokenManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:      "test-secret-key",
		JWTIssuer:      "TaskManagementAPI",
		JWTAudience:    "TaskManagementAPI.Clients",
		APIRateLimit:   1000,
		APIRateWindow:  60,
		AuthRateLimit:  1000,
		AuthRateWindow: 60,
	}

	users := repository.NewMemoryUserRepository()
	todos := repository.NewMemoryTodoRepository()

	r := gin.New()
	apihttp.RegisterRoutes(r, apihttp.Stores{Users: users, Todos: todos}, cfg)

	return &fixture{
		router: r,
		users:  users,
		todos:  todos,
		tokens: service.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience),
	}
}

// seedUser inserts a user and returns it with the assigned id.
func (f *fixture) seedUser(t *testing.T, username, password string, super bool) *domain.User {
	t.Helper()
	u := &domain.User{Username: username, Password: password, IsSuperUser: super}
	if err := f.users.Insert(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// tokenFor issues a valid bearer token for the user.
func (f *fixture) tokenFor(t *testing.T, u *domain.User) string {
	t.Helper()
	token, err := f.tokens.Issue(u)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

// do performs a request against the fixture router. A non-empty token
// is sent as a bearer Authorization header.
func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d; want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
