package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/DouglasTanno/TaskManagementAPI/internal/http/handlers"
	"github.com/DouglasTanno/TaskManagementAPI/internal/repository"
)

func TestLoginReturnsTokenForValidCredentials(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "su", "password", true)

	w := f.do(t, http.MethodPost, "/auth/login", "", handlers.LoginRequest{
		Username: "su",
		Password: "password",
	})
	mustStatus(t, w, http.StatusOK)

	var resp handlers.JwtResponse
	decodeJSON(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("login returned empty token")
	}

	ident, err := f.tokens.Verify(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if ident.Username != "su" {
		t.Fatalf("token name claim = %q; want su", ident.Username)
	}
	if ident.UserID != user.ID {
		t.Fatalf("token subject = %d; want %d", ident.UserID, user.ID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "su", "password", true)

	cases := []handlers.LoginRequest{
		{Username: "su", Password: "wrong"},
		{Username: "ghost", Password: "password"},
		{Username: "", Password: ""},
	}

	for _, tc := range cases {
		w := f.do(t, http.MethodPost, "/auth/login", "", tc)
		mustStatus(t, w, http.StatusUnauthorized)
		if w.Body.Len() > 0 {
			var resp handlers.JwtResponse
			decodeJSON(t, w, &resp)
			if resp.Token != "" {
				t.Fatalf("bad credentials %+v produced a token", tc)
			}
		}
	}
}

func TestRegisterRequiresToken(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "su", "password", true)

	w := f.do(t, http.MethodPost, "/auth/register", "", handlers.RegisterRequest{
		Username: "newuser",
		Password: "pw",
	})
	mustStatus(t, w, http.StatusUnauthorized)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	f := newFixture(t)
	su := f.seedUser(t, "su", "password", true)
	token := f.tokenFor(t, su)

	cases := []handlers.RegisterRequest{
		{Username: "", Password: "pw"},
		{Username: "newuser", Password: ""},
		{},
	}

	for _, tc := range cases {
		w := f.do(t, http.MethodPost, "/auth/register", token, tc)
		mustStatus(t, w, http.StatusBadRequest)

		var resp handlers.ErrorResponse
		decodeJSON(t, w, &resp)
		if resp.Message != "Username and Password are required." {
			t.Fatalf("message = %q", resp.Message)
		}
	}
}

func TestRegisterBySuperUser(t *testing.T) {
	f := newFixture(t)
	su := f.seedUser(t, "su", "password", true)
	token := f.tokenFor(t, su)

	w := f.do(t, http.MethodPost, "/auth/register", token, handlers.RegisterRequest{
		Username: "newuser",
		Password: "newpassword",
	})
	mustStatus(t, w, http.StatusOK)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	if resp["message"] != "Usuário cadastrado com sucesso." {
		t.Fatalf("message = %q", resp["message"])
	}

	if _, err := f.users.GetByCredentials(context.Background(), "newuser", "newpassword"); err != nil {
		t.Fatalf("registered user not persisted: %v", err)
	}
}

func TestRegisterByRegularUserIsRejected(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "su", "password", true)
	regular := f.seedUser(t, "regular", "pw", false)
	token := f.tokenFor(t, regular)

	w := f.do(t, http.MethodPost, "/auth/register", token, handlers.RegisterRequest{
		Username: "newuser",
		Password: "pw",
	})
	mustStatus(t, w, http.StatusBadRequest)

	var resp handlers.ErrorResponse
	decodeJSON(t, w, &resp)
	if resp.Message != "Somente um 'superuser' pode cadastrar novos usuários" {
		t.Fatalf("message = %q", resp.Message)
	}

	if _, err := f.users.GetByCredentials(context.Background(), "newuser", "pw"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatal("rejected registration persisted a user")
	}
}

func TestRegisterWithGarbageToken(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "su", "password", true)

	w := f.do(t, http.MethodPost, "/auth/register", "not.a.token", handlers.RegisterRequest{
		Username: "newuser",
		Password: "pw",
	})
	mustStatus(t, w, http.StatusUnauthorized)
}
