package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
)

// RBAC enforces role-based access control over the identity injected by Auth.
// The check is ANY-match: the request passes when the token's role set
// intersects allowedRoles. Requests without an identity are rejected with 401
// since Auth evidently did not run.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(IdentityKey).(*domain.Identity)
			if !ok || identity == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authentication"})
			}
			if !identity.HasAnyRole(allowed) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden: insufficient role"})
			}
			return next(c)
		}
	}
}
