package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
)

// principalKey is the echo context key holding the request principal. The
// security context is strictly request-scoped: it lives on the echo.Context
// and dies with the request, never in process-global state.
const principalKey = "auth.principal"

// SetPrincipal attaches the resolved principal to the request scope.
func SetPrincipal(c echo.Context, p *domain.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal for the request, or nil for anonymous
// requests.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}
