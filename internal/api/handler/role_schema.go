package handler

import "github.com/DawoodIsrar/user-management-api/internal/core/domain"

type createRoleRequest struct {
	Name string `json:"name" validate:"required"`
}

type assignRoleRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
	RoleID int64 `json:"roleId" validate:"required,gt=0"`
}

// userRolesResponse is the view returned by GET /roles/:userId — the user
// together with its resolved role list.
type userRolesResponse struct {
	User  *domain.User  `json:"user"`
	Roles []domain.Role `json:"roles"`
}
