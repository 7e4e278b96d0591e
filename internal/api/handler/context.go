package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/api/middleware"
	"github.com/mmp/property-portal/internal/core/domain"
)

// ctxClaims returns the claims injected by the Auth middleware. Their absence
// means the route was mounted without Auth, which fails closed.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return nil, domain.ErrUnauthenticated
	}
	return claims, nil
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.InvalidInput("invalid payload")
	}
	return c.Validate(req)
}
