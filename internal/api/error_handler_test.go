package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mmp/property-portal/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		body string
	}{
		{domain.ErrUnauthenticated, http.StatusUnauthorized, `{"error":"unauthorized"}`},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"invalid credentials"}`},
		{domain.ErrForbidden, http.StatusForbidden, `{"error":"forbidden"}`},
		{domain.InvalidInput("name is required"), http.StatusBadRequest, `{"error":"name is required"}`},
		{domain.ErrUserExists, http.StatusConflict, `{"error":"user already exists"}`},
		{domain.ErrUserNotFound, http.StatusNotFound, `{"error":"user not found"}`},
		{fmt.Errorf("find contact: %w", domain.ErrResourceNotFound), http.StatusNotFound, `{"error":"not found"}`},
		{fmt.Errorf("%w: max 8 bytes", domain.ErrPayloadTooLarge), http.StatusRequestEntityTooLarge, `{"error":"payload too large"}`},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, `{"error":"too many login attempts"}`},
		{echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), http.StatusMethodNotAllowed, `{"error":"method not allowed"}`},
		{fmt.Errorf("find: %w: %w", domain.ErrStorageUnavailable, errors.New("dial tcp: refused")), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	var logBuf strings.Builder
	handler := NewHTTPErrorHandler(zerolog.New(&logBuf))
	e := echo.New()

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/x", nil), rec)

			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if strings.TrimSpace(rec.Body.String()) != tc.body {
				t.Fatalf("unexpected body: %s", rec.Body.String())
			}
		})
	}

	if strings.Contains(logBuf.String(), "unauthorized") {
		t.Fatalf("expected errors must not be logged: %s", logBuf.String())
	}
	if !strings.Contains(logBuf.String(), "dial tcp: refused") {
		t.Fatalf("unexpected error must be logged with its cause: %s", logBuf.String())
	}
}

func TestHTTPErrorHandler_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/api/x", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	if rec.Code != http.StatusForbidden || rec.Body.Len() != 0 {
		t.Fatalf("unexpected response: %d %q", rec.Code, rec.Body.String())
	}
}
