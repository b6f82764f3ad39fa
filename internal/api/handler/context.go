package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
	"github.com/DawoodIsrar/user-management-api/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// presence proves the middleware ran; a gated handler reached without it is a
// wiring error and is rejected with 401.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(*domain.Identity)
	if !ok || identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
