package memory

import (
	"context"
	"sync"

	"github.com/abdout/abushala-backend/internal/apperrors"
	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/core/ports"
)

// SessionRepository keeps sessions in process, keyed by token hash.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]domain.Session)}
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func (r *SessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.TokenHash] = session
	return nil
}

func (r *SessionRepository) FindSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[tokenHash]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &session, nil
}

func (r *SessionRepository) DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, tokenHash)
	return nil
}
