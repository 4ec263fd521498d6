package roles

import "time"

// Role groups permissions for assignment to users.
type Role struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoleInput is the payload for creating or updating a role.
type RoleInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Permissions []string `json:"permissions" validate:"omitempty,dive,min=1"`
}
