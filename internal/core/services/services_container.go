package services

import (
	"github.com/abdout/abushala-backend/internal/core/ports"
	portssvc "github.com/abdout/abushala-backend/internal/core/ports/services"
	"github.com/abdout/abushala-backend/internal/platform/config"
)

// NewServiceContainer wires the mutation layer on top of one repository
// set. The store is passed in explicitly; nothing here is ambient.
func NewServiceContainer(repos ports.Repositories, cfg *config.Config) *portssvc.ServiceContainer {
	authService := NewAuthService(repos.User, repos.Session, AuthServiceConfig{
		SessionExpiry: cfg.SessionExpiryDuration,
		ResetSecret:   cfg.ResetTokenSecret,
		ResetExpiry:   cfg.ResetTokenExpiryDuration,
		ResetIssuer:   cfg.ResetTokenIssuer,
	})

	return &portssvc.ServiceContainer{
		Auth:     authService,
		User:     NewUserService(repos.User, authService),
		Currency: NewCurrencyService(repos.Currency),
		Contact:  NewContactService(repos.Contact),
	}
}
