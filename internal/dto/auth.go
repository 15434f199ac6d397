package dto

// RegisterRequest defines the data needed to register an account.
// Password length and confirmation equality are checked by the service so
// the checks run in a fixed order with user-facing messages.
type RegisterRequest struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           *string `json:"phone"`
	Password        string  `json:"password" binding:"required"`
	ConfirmPassword *string `json:"confirmPassword"`
}

// LoginRequest defines the login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the opaque session token and the public account.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ResetInitiateRequest starts the password-reset flow.
type ResetInitiateRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetInitiateResponse carries the short-lived reset token required by the
// second step.
type ResetInitiateResponse struct {
	ResetToken string `json:"resetToken"`
}

// ResetCompleteRequest finishes the password-reset flow.
type ResetCompleteRequest struct {
	ResetToken string `json:"resetToken" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
