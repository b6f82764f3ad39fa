package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenConfig carries the signing material for the token service. The secret
// is mandatory: there is no fallback default.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

// TokenService issues and verifies HS256-signed bearer tokens embedding
// {user_id, roles, exp}.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token service: signing secret is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(cfg.Secret), ttl: ttl}, nil
}

func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	roles := identity.Roles
	if roles == nil {
		roles = []string{}
	}
	claims := jwt.MapClaims{
		"user_id": identity.UserID,
		"roles":   roles,
		"exp":     time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *TokenService) Verify(token string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	// JSON numbers decode as float64 inside MapClaims.
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	identity := &domain.Identity{UserID: int64(rawID), Roles: []string{}}
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range rawRoles {
			if name, ok := r.(string); ok {
				identity.Roles = append(identity.Roles, name)
			}
		}
	}
	return identity, nil
}
