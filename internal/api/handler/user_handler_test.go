package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
	"github.com/DawoodIsrar/user-management-api/internal/core/ports"
)

func TestUserHandler_Create(t *testing.T) {
	users := &stubUserService{
		createFn: func(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
			return &domain.User{ID: 5, Name: input.Name, Email: input.Email, IsActive: true}, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/users",
		`{"name":"Ann","email":"ann@x.com","age":30}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if user.ID != 5 {
		t.Fatalf("expected id 5, got %d", user.ID)
	}
}

func TestUserHandler_Create_InvalidEmail(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/users",
		`{"name":"Ann","email":"nope"}`)
	err := h.Create(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if code := httpErrorCode(t, err); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestUserHandler_List(t *testing.T) {
	users := &stubUserService{
		listFn: func(context.Context) ([]*domain.User, error) {
			return []*domain.User{{ID: 1}, {ID: 2}}, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out []*domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 users, got %d", len(out))
	}
}

func TestUserHandler_Get(t *testing.T) {
	users := &stubUserService{
		getFn: func(_ context.Context, id int64) (*domain.User, error) {
			if id != 7 {
				return nil, domain.ErrUserNotFound
			}
			return &domain.User{ID: 7, Name: "Ann"}, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/users/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	users := &stubUserService{
		getFn: func(context.Context, int64) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(users)

	c, _ := newTestContext(t, http.MethodGet, "/api/v1/users/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	if err := h.Get(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound returned for central mapping, got %v", err)
	}
}

func TestUserHandler_Get_BadID(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/v1/users/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	err := h.Get(c)
	if err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestUserHandler_Update_PassesPartialInput(t *testing.T) {
	var got ports.UpdateUserInput
	users := &stubUserService{
		updateFn: func(_ context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
			got = input
			return &domain.User{ID: id, Name: *input.Name}, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodPut, "/api/v1/users/3", `{"name":"Jane"}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Name == nil || *got.Name != "Jane" {
		t.Fatalf("expected name forwarded, got %+v", got)
	}
	if got.Email != nil || got.Age != nil || got.Phone != nil || got.IsActive != nil {
		t.Fatalf("expected absent fields to stay nil, got %+v", got)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	var deleted int64
	users := &stubUserService{
		deleteFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodDelete, "/api/v1/users/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != 9 {
		t.Fatalf("expected delete of id 9, got %d", deleted)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	users := &stubUserService{
		deleteFn: func(context.Context, int64) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(users)

	c, _ := newTestContext(t, http.MethodDelete, "/api/v1/users/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	if err := h.Delete(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound returned for central mapping, got %v", err)
	}
}
