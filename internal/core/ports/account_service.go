package ports

import (
	"context"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
)

// RegisterInput carries the data needed to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AccountService implements registration and login.
type AccountService interface {
	// Register hashes the password, creates the user and links the default
	// USER role when that role exists. Registration still succeeds when the
	// default role is absent; the account then logs in with an empty role set.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a bearer token plus the user.
	// Unknown email and wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// LoginThrottle limits failed login attempts per subject.
type LoginThrottle interface {
	TooManyAttempts(ctx context.Context, subject string) (bool, error)
	RecordFailure(ctx context.Context, subject string) error
	Reset(ctx context.Context, subject string) error
}
