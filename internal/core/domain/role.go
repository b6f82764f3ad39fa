package domain

import "time"

// Role is a named grant referenced by bearer tokens. Roles are immutable once
// created; there is no update operation.
type Role struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRole links a user to a role. Duplicate (UserID, RoleID) pairs are not
// prevented at this layer.
type UserRole struct {
	UserID    int64     `json:"user_id"`
	RoleID    int64     `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}
