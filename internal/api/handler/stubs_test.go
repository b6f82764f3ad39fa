package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
	"github.com/DawoodIsrar/user-management-api/internal/core/ports"
)

// Function-field service stubs shared by the handler tests.

type stubAccountService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubUserService struct {
	createFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	listFn   func(ctx context.Context) ([]*domain.User, error)
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	updateFn func(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubUserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubRoleService struct {
	createFn    func(ctx context.Context, name string) (*domain.Role, error)
	assignFn    func(ctx context.Context, userID, roleID int64) (*domain.UserRole, error)
	userRolesFn func(ctx context.Context, userID int64) (*ports.UserWithRoles, error)
}

func (s *stubRoleService) CreateRole(ctx context.Context, name string) (*domain.Role, error) {
	return s.createFn(ctx, name)
}

func (s *stubRoleService) AssignRole(ctx context.Context, userID, roleID int64) (*domain.UserRole, error) {
	return s.assignFn(ctx, userID, roleID)
}

func (s *stubRoleService) GetUserRoles(ctx context.Context, userID int64) (*ports.UserWithRoles, error) {
	return s.userRolesFn(ctx, userID)
}

// newTestContext builds an echo context wired with the request validator, the
// same way the router configures the live server.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// httpErrorCode unwraps an *echo.HTTPError returned by a handler.
func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}
