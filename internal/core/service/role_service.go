package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
	"github.com/DawoodIsrar/user-management-api/internal/core/ports"
)

// RoleService implements role creation, assignment, and per-user lookup.
type RoleService struct {
	users ports.UserRepository
	roles ports.RoleRepository
	audit ports.AuditRecorder // optional
	log   zerolog.Logger
}

func NewRoleService(users ports.UserRepository, roles ports.RoleRepository, audit ports.AuditRecorder, log zerolog.Logger) *RoleService {
	return &RoleService{users: users, roles: roles, audit: audit, log: log}
}

func (s *RoleService) CreateRole(ctx context.Context, name string) (*domain.Role, error) {
	role := &domain.Role{Name: name, CreatedAt: time.Now().UTC()}
	created, err := s.roles.Create(ctx, role)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("role_id", created.ID).Str("name", created.Name).Msg("role created")
	return created, nil
}

// AssignRole inserts the user-role link without checking that either id
// exists; the store's own constraints decide. Duplicate pairs are not
// rejected.
func (s *RoleService) AssignRole(ctx context.Context, userID, roleID int64) (*domain.UserRole, error) {
	link, err := s.roles.Assign(ctx, userID, roleID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", userID).Int64("role_id", roleID).Msg("role assigned")
	if s.audit != nil {
		s.audit.Record(domain.AuditEvent{
			Subject:   formatUserID(userID),
			Action:    domain.AuditActionRoleAssign,
			Outcome:   domain.AuditOutcomeSuccess,
			Timestamp: time.Now().UTC(),
		})
	}
	return link, nil
}

func (s *RoleService) GetUserRoles(ctx context.Context, userID int64) (*ports.UserWithRoles, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	roles, err := s.roles.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ports.UserWithRoles{User: user, Roles: roles}, nil
}

func formatUserID(id int64) string {
	return "user:" + strconv.FormatInt(id, 10)
}
