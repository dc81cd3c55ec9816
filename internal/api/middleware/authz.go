package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAuthenticated rejects anonymous requests with 401. Any authenticated
// principal passes, whatever its authorities.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if PrincipalFrom(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireAuthority enforces that the request principal holds at least one of
// the given authorities. Anonymous requests get 401; authenticated but
// under-privileged requests get 403 with no handler side effects.
func RequireAuthority(authorities ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := PrincipalFrom(c)
			if p == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			for _, a := range authorities {
				if p.HasAuthority(a) {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
		}
	}
}
