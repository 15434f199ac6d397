package domain

import "time"

// Role determines what an account may do: admins hold full mutation
// rights, regular users are read-only.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents an account in the domain. Email is stored lowercased and
// compared case-insensitively. PasswordHash is a bcrypt hash; it never
// leaves the service layer.
type User struct {
	UserID       string    `json:"userID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
