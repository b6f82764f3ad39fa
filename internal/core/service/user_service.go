package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
	"github.com/DawoodIsrar/user-management-api/internal/core/ports"
)

// UserService implements CRUD over user records.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	now := time.Now().UTC()
	user := &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		Age:       input.Age,
		Phone:     input.Phone,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	updated, err := s.users.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
