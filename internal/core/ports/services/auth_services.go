package services

import (
	"context"

	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/dto"
)

// AuthSvcFacade defines registration, login, logout, session resolution and
// the two-step password-reset flow.
type AuthSvcFacade interface {
	// Register creates a new account. Role defaults to user unless the
	// request comes through the admin-add-admin path. Checks run in order:
	// confirmation equality, password length, duplicate email.
	Register(ctx context.Context, req dto.RegisterRequest, role domain.Role) (*domain.User, error)

	// Login verifies credentials and issues an opaque session token.
	// Unknown email and wrong password fail identically with
	// apperrors.ErrInvalidCredentials.
	Login(ctx context.Context, email string, password string) (*domain.User, string, error)

	// Logout deletes the session for the given raw token. Unknown tokens
	// are not an error.
	Logout(ctx context.Context, token string) error

	// ResolveSession maps a raw session token to the account it belongs
	// to, reading the account row fresh so role changes apply immediately.
	ResolveSession(ctx context.Context, token string) (*domain.User, error)

	// InitiatePasswordReset verifies an account exists for the email and
	// returns a short-lived reset token. A missing account fails with the
	// generic not-found error.
	InitiatePasswordReset(ctx context.Context, email string) (string, error)

	// CompletePasswordReset validates the reset token and overwrites the
	// stored credential. Existing sessions stay valid.
	CompletePasswordReset(ctx context.Context, resetToken string, newPassword string) error
}
