package ports

import "github.com/DawoodIsrar/user-management-api/internal/core/domain"

// TokenService issues and verifies signed, time-limited bearer tokens.
type TokenService interface {
	// Issue produces a self-contained signed credential embedding the identity.
	Issue(identity domain.Identity) (string, error)
	// Verify checks signature and expiry and returns the embedded identity.
	// Any failure (bad signature, malformed token, expired) yields
	// domain.ErrInvalidToken.
	Verify(token string) (*domain.Identity, error)
}
