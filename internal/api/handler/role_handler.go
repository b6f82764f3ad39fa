package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/DawoodIsrar/user-management-api/internal/core/ports"
)

// RoleHandler handles role creation, assignment, and per-user lookup.
type RoleHandler struct {
	roles ports.RoleService
	log   zerolog.Logger
}

func NewRoleHandler(roles ports.RoleService, log zerolog.Logger) *RoleHandler {
	return &RoleHandler{roles: roles, log: log}
}

// Create handles POST /roles — ADMIN only.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role name"
// @Success      201   {object}  domain.Role
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	role, err := h.roles.CreateRole(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, role)
}

// Assign handles POST /roles/assign — ADMIN only.
//
// @Summary      Assign a role to a user
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignRoleRequest  true  "User and role ids"
// @Success      201   {object}  domain.UserRole
// @Failure      403   {object}  errorResponse
// @Router       /roles/assign [post]
func (h *RoleHandler) Assign(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	link, err := h.roles.AssignRole(c.Request().Context(), req.UserID, req.RoleID)
	if err != nil {
		return err
	}

	h.log.Info().
		Int64("actor_id", identity.UserID).
		Int64("user_id", req.UserID).
		Int64("role_id", req.RoleID).
		Msg("role assignment requested")
	return c.JSON(http.StatusCreated, link)
}

// UserRoles handles GET /roles/:userId.
//
// @Summary      Get all roles for a user
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "User id"
// @Success      200     {object}  userRolesResponse
// @Failure      404     {object}  errorResponse
// @Router       /roles/{userId} [get]
func (h *RoleHandler) UserRoles(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	view, err := h.roles.GetUserRoles(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userRolesResponse{User: view.User, Roles: view.Roles})
}
