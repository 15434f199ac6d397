package services

import (
	"context"

	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/dto"
)

// UserReaderSvc defines read operations for accounts.
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriterSvc defines admin-only mutations on accounts.
type UserWriterSvc interface {
	// SetUserRole changes the target account's role. Demoting the sole
	// remaining admin fails with apperrors.ErrLastAdmin. The returned flag
	// is true when the actor demoted their own account.
	SetUserRole(ctx context.Context, targetUserID string, role domain.Role, actorUserID string) (bool, error)

	// CreateAdmin registers a new account with the admin role.
	CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (*domain.User, error)
}

// UserSvcFacade combines all account-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
