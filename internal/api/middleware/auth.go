package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
	"github.com/mmp/property-portal/internal/core/service"
)

const claimsKey = "claims"

// Auth verifies the request's session token and stores the claims in the
// echo context. Missing, malformed and expired tokens all fail the same way.
func Auth(verifier ports.TokenVerifier, cookieName string) echo.MiddlewareFunc {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c.Request(), cookieName)
			if token == "" {
				return domain.ErrUnauthenticated
			}
			claims, ok := verifier.Verify(token)
			if !ok {
				return domain.ErrUnauthenticated
			}

			c.Set(claimsKey, claims)
			c.Set("username", claims.Subject)
			c.Set("role", string(claims.Role))
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims stored by Auth, or nil.
func ClaimsFrom(c echo.Context) *domain.Claims {
	claims, _ := c.Get(claimsKey).(*domain.Claims)
	return claims
}

// ClientIP copies the caller's address into the request context so services
// can attach it to audit entries.
func ClientIP() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(service.WithClientIP(req.Context(), c.RealIP())))
			return next(c)
		}
	}
}
