package handler

// Request types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type createUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   *int   `json:"age,omitempty"   validate:"omitempty,gt=0"`
	Phone string `json:"phone,omitempty"`
}

// updateUserRequest carries a partial update: absent fields stay untouched.
type updateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Age      *int    `json:"age,omitempty"   validate:"omitempty,gt=0"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
