package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
	"github.com/DawoodIsrar/user-management-api/internal/core/ports"
)

// AccountService implements registration and login.
type AccountService struct {
	users    ports.UserRepository
	roles    ports.RoleRepository
	tokens   ports.TokenService
	throttle ports.LoginThrottle // optional
	audit    ports.AuditRecorder // optional
	cost     int
	log      zerolog.Logger
}

func NewAccountService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	tokens ports.TokenService,
	throttle ports.LoginThrottle,
	audit ports.AuditRecorder,
	bcryptCost int,
	log zerolog.Logger,
) *AccountService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AccountService{
		users:    users,
		roles:    roles,
		tokens:   tokens,
		throttle: throttle,
		audit:    audit,
		cost:     bcryptCost,
		log:      log,
	}
}

// Register creates the user, then links the default USER role when it exists.
// The three store writes are independent: a crash after the user insert leaves
// an account without the default role, which surfaces at login as an empty
// role set. There is no rollback.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		s.record(input.Email, domain.AuditActionRegister, domain.AuditOutcomeFailure, err.Error())
		return nil, err
	}

	role, err := s.roles.FindByName(ctx, domain.RoleUser)
	switch {
	case errors.Is(err, domain.ErrRoleNotFound):
		s.log.Warn().Str("email", created.Email).Msg("default role missing, user registered without roles")
	case err != nil:
		return nil, err
	default:
		if _, err := s.roles.Assign(ctx, created.ID, role.ID); err != nil {
			return nil, err
		}
	}

	s.log.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	s.record(created.Email, domain.AuditActionRegister, domain.AuditOutcomeSuccess, "")
	return created, nil
}

// Login verifies credentials and issues a token embedding the user's current
// role set. Unknown email and wrong password return the identical error so
// callers cannot tell which check failed.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyAttempts(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("login throttle check failed, continuing")
		} else if blocked {
			s.record(email, domain.AuditActionLogin, domain.AuditOutcomeFailure, "throttled")
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.failedAttempt(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.failedAttempt(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	roles, err := s.roles.ForUser(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}

	token, err := s.tokens.Issue(domain.Identity{UserID: user.ID, Roles: names})
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("failed to reset login throttle")
		}
	}

	s.log.Info().Int64("user_id", user.ID).Strs("roles", names).Msg("user logged in")
	s.record(email, domain.AuditActionLogin, domain.AuditOutcomeSuccess, "")
	return token, user, nil
}

func (s *AccountService) failedAttempt(ctx context.Context, email string) {
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, email); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("failed to record login failure")
		}
	}
	s.record(email, domain.AuditActionLogin, domain.AuditOutcomeFailure, "invalid credentials")
}

func (s *AccountService) record(subject, action, outcome, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Subject:   subject,
		Action:    action,
		Outcome:   outcome,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}
