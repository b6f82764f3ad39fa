package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
)

func TestTokenService_RequiresSecret(t *testing.T) {
	if _, err := NewTokenService(TokenConfig{}); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestTokenService_IssueVerify_RoundTrip(t *testing.T) {
	svc, err := NewTokenService(TokenConfig{Secret: "test-secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := svc.Issue(domain.Identity{UserID: 42, Roles: []string{domain.RoleUser, domain.RoleAdmin}})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	identity, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if identity.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", identity.UserID)
	}
	if len(identity.Roles) != 2 || identity.Roles[0] != domain.RoleUser || identity.Roles[1] != domain.RoleAdmin {
		t.Fatalf("unexpected roles: %v", identity.Roles)
	}
}

func TestTokenService_Verify_EmptyRoleSet(t *testing.T) {
	svc, _ := NewTokenService(TokenConfig{Secret: "test-secret"})

	token, err := svc.Issue(domain.Identity{UserID: 7})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	identity, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if len(identity.Roles) != 0 {
		t.Fatalf("expected empty role set, got %v", identity.Roles)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer, _ := NewTokenService(TokenConfig{Secret: "secret-a"})
	verifier, _ := NewTokenService(TokenConfig{Secret: "secret-b"})

	token, err := issuer.Issue(domain.Identity{UserID: 1, Roles: []string{domain.RoleUser}})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc, _ := NewTokenService(TokenConfig{Secret: "test-secret"})

	if _, err := svc.Verify("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc, _ := NewTokenService(TokenConfig{Secret: "test-secret"})

	claims := jwt.MapClaims{
		"user_id": int64(5),
		"roles":   []string{domain.RoleUser},
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(expired); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_Verify_WrongAlgorithm(t *testing.T) {
	svc, _ := NewTokenService(TokenConfig{Secret: "test-secret"})

	claims := jwt.MapClaims{
		"user_id": int64(5),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for HS512 token, got %v", err)
	}
}
