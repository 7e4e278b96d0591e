package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/core/domain"
)

// RequireAdmin rejects non-admin claims before the handler runs. It must be
// chained after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := domain.Authorize(ClaimsFrom(c), domain.Access{AdminOnly: true}); err != nil {
				return err
			}
			return next(c)
		}
	}
}
