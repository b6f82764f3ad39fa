package ports

import (
	"context"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
)

// RoleRepository defines persistence operations for roles and user-role links.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	// Assign inserts a user-role link. No existence check is performed on
	// either id and duplicate pairs are not rejected.
	Assign(ctx context.Context, userID, roleID int64) (*domain.UserRole, error)
	// ForUser resolves the role set currently linked to a user.
	ForUser(ctx context.Context, userID int64) ([]domain.Role, error)
}
