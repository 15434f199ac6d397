package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/core/ports"
	"github.com/abdout/abushala-backend/internal/utils"
)

// The account every fresh store starts with, so currency and role
// management are reachable before anyone else signs up.
const (
	DefaultAdminName     = "المدير العام"
	DefaultAdminEmail    = "admin@gmail.com"
	DefaultAdminPassword = "Admin123!"
)

// EnsureDefaults provisions an empty store: when no admin account exists
// the default admin is created, and when the currency list is empty the
// default list is written. Registration only ever creates the user role,
// so without this a fresh store would have no way to mint its first admin.
// Safe to run repeatedly.
func EnsureDefaults(ctx context.Context, repos ports.Repositories) error {
	admins, err := repos.User.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if admins == 0 {
		hash, err := utils.HashPassword(DefaultAdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
		now := time.Now()
		admin := domain.User{
			UserID:       uuid.NewString(),
			Name:         DefaultAdminName,
			Email:        DefaultAdminEmail,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repos.User.SaveUser(ctx, admin); err != nil {
			return fmt.Errorf("failed to create default admin: %w", err)
		}
	}

	currencies, err := repos.Currency.ListCurrencies(ctx)
	if err != nil {
		return fmt.Errorf("failed to list currencies: %w", err)
	}
	if len(currencies) == 0 {
		if err := repos.Currency.ReplaceAllCurrencies(ctx, DefaultCurrencyList(time.Now())); err != nil {
			return fmt.Errorf("failed to seed default currencies: %w", err)
		}
	}

	return nil
}
