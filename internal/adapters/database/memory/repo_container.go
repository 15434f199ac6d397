package memory

import (
	"github.com/abdout/abushala-backend/internal/core/ports"
)

// NewRepositories builds the full in-memory adapter set.
func NewRepositories() ports.Repositories {
	return ports.Repositories{
		User:     NewUserRepository(),
		Currency: NewCurrencyRepository(),
		Session:  NewSessionRepository(),
		Contact:  NewContactRepository(),
	}
}
