package users

import "time"

// User is a console account as shown on the user management page.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary carries the aggregate counters shown above the user table.
type Summary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// CreateUserInput is the payload for provisioning an account.
type CreateUserInput struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required,min=2,max=150"`
	Password string  `json:"password" validate:"required,min=8"`
	RoleIDs  []int64 `json:"role_ids" validate:"omitempty,dive,gt=0"`
}

// UpdateUserInput updates mutable account fields.
type UpdateUserInput struct {
	Name     string  `json:"name" validate:"required,min=2,max=150"`
	IsActive *bool   `json:"is_active" validate:"required"`
	RoleIDs  []int64 `json:"role_ids" validate:"omitempty,dive,gt=0"`
}
