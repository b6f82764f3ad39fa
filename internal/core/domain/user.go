package domain

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User models an account in the system. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Age          *int      `json:"age,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the decoded payload of a bearer token: who the caller is and
// which roles it carried at issuance time. The role set is frozen into the
// token; later assignments are not reflected until a new token is issued.
type Identity struct {
	UserID int64
	Roles  []string
}

// HasAnyRole reports whether the identity holds at least one of the allowed
// roles. Authorization is ANY-match set intersection, not hierarchical.
func (i Identity) HasAnyRole(allowed map[string]struct{}) bool {
	for _, r := range i.Roles {
		if _, ok := allowed[r]; ok {
			return true
		}
	}
	return false
}
