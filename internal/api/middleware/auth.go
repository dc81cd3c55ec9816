package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/ports"
)

// Authenticate resolves the request identity from a bearer token and, when it
// checks out, populates the request security context. It never rejects the
// request itself: an absent, malformed, or invalid token leaves the request
// anonymous, and route-level authorization decides whether that is acceptable.
//
// The middleware runs at most one authentication attempt per request; a
// principal already on the context (internal forwarding) is left untouched.
func Authenticate(tokens ports.TokenCodec, identity ports.IdentityLoader, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if PrincipalFrom(c) != nil {
				return next(c)
			}

			token, ok := bearerToken(c)
			if !ok {
				return next(c)
			}

			subject, err := tokens.ExtractSubject(token)
			if err != nil {
				log.Debug().Str("path", c.Path()).Msg("bearer token rejected")
				return next(c)
			}

			principal, err := identity.Load(c.Request().Context(), subject)
			if err != nil {
				log.Debug().Err(err).Str("subject", subject).Msg("identity resolution failed")
				return next(c)
			}

			if tokens.IsValid(token, principal.Username) {
				SetPrincipal(c, principal)
			}

			return next(c)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Any other scheme is ignored.
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
