package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abdout/abushala-backend/internal/core/ports"
)

// NewRepositories builds the full PostgreSQL adapter set on one pool.
func NewRepositories(pool *pgxpool.Pool) ports.Repositories {
	return ports.Repositories{
		User:     NewUserRepository(pool),
		Currency: NewCurrencyRepository(pool),
		Session:  NewSessionRepository(pool),
		Contact:  NewContactRepository(pool),
	}
}
