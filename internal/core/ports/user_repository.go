package ports

import (
	"context"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
)

// UpdateUserInput carries a partial update: nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Age      *int
	Phone    *string
	IsActive *bool
}

// UserRepository defines persistence operations for user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
