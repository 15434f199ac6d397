package ports

import (
	"context"
	"time"

	"github.com/abdout/abushala-backend/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail expects an already-lowercased email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	// SetUserRole changes the account's role. It returns
	// apperrors.ErrLastAdmin when the change would demote the sole
	// remaining admin, and apperrors.ErrNotFound for an unknown id. The
	// guard and the write happen atomically inside the adapter.
	SetUserRole(ctx context.Context, userID string, role domain.Role, updatedAt time.Time) error
	UpdatePassword(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error
	CountAdmins(ctx context.Context) (int, error)
}

// CurrencyRepository defines persistence operations for currency records.
type CurrencyRepository interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	UpdateCurrency(ctx context.Context, currency domain.Currency) error
	DeleteCurrency(ctx context.Context, currencyID string) error
	// ReplaceAllCurrencies swaps the whole list for the given one, as the
	// storefront's "refresh to defaults" does.
	ReplaceAllCurrencies(ctx context.Context, currencies []domain.Currency) error
}

// SessionRepository defines persistence operations for login sessions.
// Sessions are keyed by the SHA256 hash of the opaque token.
type SessionRepository interface {
	SaveSession(ctx context.Context, session domain.Session) error
	FindSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error
}

// ContactRepository defines persistence operations for contact messages.
type ContactRepository interface {
	SaveMessage(ctx context.Context, message domain.ContactMessage) error
	ListMessages(ctx context.Context, limit int, offset int) ([]domain.ContactMessage, error)
}

// Repositories bundles one adapter set, so main can swap the pgsql and
// memory backends wholesale.
type Repositories struct {
	User     UserRepository
	Currency CurrencyRepository
	Session  SessionRepository
	Contact  ContactRepository
}
