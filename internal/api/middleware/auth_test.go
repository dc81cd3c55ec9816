package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/auth"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
)

type stubIdentityLoader struct {
	principals map[string]*domain.Principal
	calls      int
}

func (l *stubIdentityLoader) Load(_ context.Context, username string) (*domain.Principal, error) {
	l.calls++
	p, ok := l.principals[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return p, nil
}

func newAuthFixture(t *testing.T) (*auth.TokenCodec, *stubIdentityLoader, echo.MiddlewareFunc) {
	t.Helper()
	codec := auth.NewTokenCodec("secret")
	loader := &stubIdentityLoader{principals: map[string]*domain.Principal{
		"alice": {Username: "alice", Authorities: []string{"ROLE_USER"}},
	}}
	return codec, loader, Authenticate(codec, loader, zerolog.Nop())
}

func runRequest(t *testing.T, mw echo.MiddlewareFunc, header string) (echo.Context, *domain.Principal, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	var seen *domain.Principal
	handler := mw(func(c echo.Context) error {
		called = true
		seen = PrincipalFrom(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return c, seen, called
}

func TestAuthenticate_ValidToken(t *testing.T) {
	codec, _, mw := newAuthFixture(t)
	token, err := codec.Issue("alice", []string{"ROLE_USER"}, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, principal, called := runRequest(t, mw, "Bearer "+token)
	if !called {
		t.Fatalf("next not called")
	}
	if principal == nil || principal.Username != "alice" {
		t.Fatalf("expected alice principal, got %+v", principal)
	}
	if !principal.HasAuthority("ROLE_USER") {
		t.Fatalf("expected ROLE_USER authority")
	}
}

func TestAuthenticate_NoHeaderIsAnonymous(t *testing.T) {
	_, _, mw := newAuthFixture(t)

	_, principal, called := runRequest(t, mw, "")
	if !called {
		t.Fatalf("next not called for anonymous request")
	}
	if principal != nil {
		t.Fatalf("expected empty security context, got %+v", principal)
	}
}

func TestAuthenticate_NonBearerSchemeIsAnonymous(t *testing.T) {
	_, _, mw := newAuthFixture(t)

	_, principal, called := runRequest(t, mw, "Basic dXNlcjpwdw==")
	if !called {
		t.Fatalf("next not called")
	}
	if principal != nil {
		t.Fatalf("expected anonymous request, got %+v", principal)
	}
}

func TestAuthenticate_InvalidTokenIsAnonymous(t *testing.T) {
	_, loader, mw := newAuthFixture(t)

	_, principal, called := runRequest(t, mw, "Bearer not-a-token")
	if !called {
		t.Fatalf("next not called")
	}
	if principal != nil {
		t.Fatalf("expected anonymous request, got %+v", principal)
	}
	if loader.calls != 0 {
		t.Fatalf("identity loader should not run for an invalid token")
	}
}

func TestAuthenticate_ExpiredTokenIsAnonymous(t *testing.T) {
	codec, _, mw := newAuthFixture(t)
	token, err := codec.Issue("alice", nil, -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, principal, _ := runRequest(t, mw, "Bearer "+token)
	if principal != nil {
		t.Fatalf("expected expired token to leave request anonymous")
	}
}

func TestAuthenticate_UnknownSubjectIsAnonymous(t *testing.T) {
	codec, _, mw := newAuthFixture(t)
	token, err := codec.Issue("deleted-user", nil, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, principal, called := runRequest(t, mw, "Bearer "+token)
	if !called {
		t.Fatalf("next not called")
	}
	if principal != nil {
		t.Fatalf("expected anonymous request, got %+v", principal)
	}
}

func TestAuthenticate_IdempotentPerRequest(t *testing.T) {
	codec, loader, mw := newAuthFixture(t)
	token, err := codec.Issue("alice", nil, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	existing := &domain.Principal{Username: "pre-resolved"}
	SetPrincipal(c, existing)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if PrincipalFrom(c) != existing {
		t.Fatalf("existing principal was replaced")
	}
	if loader.calls != 0 {
		t.Fatalf("expected no second authentication attempt, loader ran %d times", loader.calls)
	}
}
