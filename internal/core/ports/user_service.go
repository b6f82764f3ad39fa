package ports

import (
	"context"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
)

// CreateUserInput carries the data for the public user-create operation.
// Accounts created this way have no password and cannot log in until one is
// set through registration.
type CreateUserInput struct {
	Name  string
	Email string
	Age   *int
	Phone string
}

// UserService defines CRUD use-case operations on user records.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
