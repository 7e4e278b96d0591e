package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/core/domain"
)

type stubVerifier struct {
	tokens map[string]*domain.Claims
}

func (v stubVerifier) Verify(token string) (*domain.Claims, bool) {
	c, ok := v.tokens[token]
	return c, ok
}

var testVerifier = stubVerifier{tokens: map[string]*domain.Claims{
	"admin-token": {Subject: "root", Role: domain.RoleAdmin, Properties: domain.AllProperties()},
	"user-token":  {Subject: "alice", Role: domain.RoleUser, Properties: domain.Properties("A")},
}}

func TestAuthMiddleware_ValidBearer(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(testVerifier, "")(func(c echo.Context) error {
		called = true
		claims := ClaimsFrom(c)
		if claims == nil || claims.Subject != "alice" {
			t.Fatalf("claims not set: %+v", claims)
		}
		if c.Get("username") != "alice" || c.Get("role") != "user" {
			t.Fatalf("username/role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", DefaultCookieName+"=admin-token")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(testVerifier, DefaultCookieName)(func(c echo.Context) error {
		if !ClaimsFrom(c).IsAdmin() {
			t.Fatalf("expected admin claims")
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cases := map[string]string{
		"missing":      "",
		"malformed":    "Bearer not-a-token",
		"wrong scheme": "Token user-token",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			handler := Auth(testVerifier, "")(func(c echo.Context) error {
				t.Fatalf("next must not be called")
				return nil
			})
			if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
				t.Fatalf("expected unauthenticated, got %v", err)
			}
		})
	}
}

func TestClientIPMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:5555"
	c := e.NewContext(req, httptest.NewRecorder())

	var seen context.Context
	handler := ClientIP()(func(c echo.Context) error {
		seen = c.Request().Context()
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if seen == nil || seen == context.Background() {
		t.Fatalf("expected an annotated request context")
	}
}
