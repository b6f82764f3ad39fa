package ports

import (
	"context"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
)

// UserWithRoles is the view returned by GetUserRoles: the user together with
// its resolved role list.
type UserWithRoles struct {
	User  *domain.User
	Roles []domain.Role
}

// RoleService defines use-case operations for roles.
type RoleService interface {
	CreateRole(ctx context.Context, name string) (*domain.Role, error)
	AssignRole(ctx context.Context, userID, roleID int64) (*domain.UserRole, error)
	GetUserRoles(ctx context.Context, userID int64) (*UserWithRoles, error)
}
