package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DawoodIsrar/user-management-api/internal/core/ports"
)

// IdentityKey is the echo context key under which Auth stores the decoded
// *domain.Identity for downstream gates and handlers.
const IdentityKey = "identity"

// Auth verifies the bearer token and injects the decoded identity into the
// request context. Status split: 401 when the header is missing or not a
// Bearer credential, 403 when the token itself fails verification.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}
