package dto

import (
	"time"

	"github.com/abdout/abushala-backend/internal/core/domain"
)

// UserResponse is the public view of an account; the password hash is
// stripped.
type UserResponse struct {
	UserID    string      `json:"userID"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     *string     `json:"phone,omitempty"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its public representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// ListUsersParams defines query parameters for listing accounts.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of public accounts.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to the list DTO.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}

// UpdateRoleRequest changes an account's role.
type UpdateRoleRequest struct {
	Role domain.Role `json:"role" binding:"required,oneof=admin user"`
}

// RoleChangeResponse reports the outcome of a role change. RemovedSelf is
// true when an admin revoked their own admin role; the client should force
// re-authentication in that case.
type RoleChangeResponse struct {
	RemovedSelf bool `json:"removedSelf"`
}

// CreateAdminRequest is the admin-add-admin payload.
type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
