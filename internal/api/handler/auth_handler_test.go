package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error)
	meFn    func(ctx context.Context, claims *domain.Claims) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	return s.loginFn(ctx, in)
}

func (s *stubAuthService) Me(ctx context.Context, claims *domain.Claims) (*domain.User, error) {
	return s.meFn(ctx, claims)
}

func loginOK(t *testing.T) *stubAuthService {
	return &stubAuthService{
		loginFn: func(_ context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
			if in.Username != "alice" || in.Password != "secret" {
				t.Fatalf("unexpected args: %+v", in)
			}
			return &ports.LoginResult{
				Token: "token123",
				User:  &domain.User{Username: "alice", PasswordHash: "$2a$hash", Role: domain.RoleUser, Properties: domain.Properties("A")},
			}, nil
		},
	}
}

const loginBody = `{"username":"alice","password":"secret"}`

func TestAuthHandler_Login_CookieProduction(t *testing.T) {
	h := NewAuthHandler(loginOK(t), SessionConfig{Transport: TransportCookie, Secure: true, TTL: 8 * time.Hour})
	c, rec := newTestContext(http.MethodPost, "/api/auth/login", loginBody, nil)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	setCookie := rec.Header().Get("Set-Cookie")
	for _, want := range []string{"mmp_token=token123", "Path=/", "Max-Age=28800", "HttpOnly", "Secure", "SameSite=Strict"} {
		if !strings.Contains(setCookie, want) {
			t.Fatalf("Set-Cookie %q missing %q", setCookie, want)
		}
	}

	body := rec.Body.String()
	if strings.Contains(body, "token123") {
		t.Fatalf("cookie transport must not echo the token: %s", body)
	}
	if strings.Contains(body, "hash") {
		t.Fatalf("password hash leaked: %s", body)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
}

func TestAuthHandler_Login_CookieDevelopment(t *testing.T) {
	h := NewAuthHandler(loginOK(t), SessionConfig{TTL: time.Hour})
	c, rec := newTestContext(http.MethodPost, "/api/auth/login", loginBody, nil)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	setCookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "SameSite=Lax") || strings.Contains(setCookie, "Secure") {
		t.Fatalf("expected Lax without Secure, got %q", setCookie)
	}
}

func TestAuthHandler_Login_BodyTransport(t *testing.T) {
	h := NewAuthHandler(loginOK(t), SessionConfig{Transport: TransportBody, TTL: time.Hour})
	c, rec := newTestContext(http.MethodPost, "/api/auth/login", loginBody, nil)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Header().Get("Set-Cookie") != "" {
		t.Fatalf("body transport must not set a cookie")
	}
	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "token123" || resp.User.Username != "alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, ports.LoginInput) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}, SessionConfig{})

	for _, body := range []string{"not-json", `{"username":"alice"}`} {
		c, _ := newTestContext(http.MethodPost, "/api/auth/login", body, nil)
		if err := h.Login(c); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("body %q: expected invalid input, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_Failure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, ports.LoginInput) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}, SessionConfig{})
	c, rec := newTestContext(http.MethodPost, "/api/auth/login", loginBody, nil)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if rec.Header().Get("Set-Cookie") != "" {
		t.Fatalf("failed login must not set a cookie")
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, SessionConfig{Secure: true})
	c, rec := newTestContext(http.MethodPost, "/api/auth/logout", "", nil)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	setCookie := rec.Header().Get("Set-Cookie")
	if !strings.HasPrefix(setCookie, "mmp_token=;") || !strings.Contains(setCookie, "Max-Age=0") {
		t.Fatalf("expected cleared cookie, got %q", setCookie)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"status":"ok"}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		meFn: func(_ context.Context, claims *domain.Claims) (*domain.User, error) {
			return &domain.User{Username: claims.Subject, Role: domain.RoleAdmin, Properties: domain.AllProperties()}, nil
		},
	}, SessionConfig{})

	c, rec := newTestContext(http.MethodGet, "/api/me", "", &domain.Claims{Subject: "root", Role: domain.RoleAdmin})
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"username":"root","role":"admin","properties":"*"}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	c, _ = newTestContext(http.MethodGet, "/api/me", "", nil)
	if err := h.Me(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}
