package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/core/ports"
)

// ContactRepository keeps contact messages in process.
type ContactRepository struct {
	mu       sync.RWMutex
	messages []domain.ContactMessage
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

var _ ports.ContactRepository = (*ContactRepository)(nil)

func (r *ContactRepository) SaveMessage(ctx context.Context, message domain.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, message)
	return nil
}

func (r *ContactRepository) ListMessages(ctx context.Context, limit int, offset int) ([]domain.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	messages := make([]domain.ContactMessage, len(r.messages))
	copy(messages, r.messages)
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})

	if offset >= len(messages) {
		return []domain.ContactMessage{}, nil
	}
	end := offset + limit
	if end > len(messages) {
		end = len(messages)
	}
	return messages[offset:end], nil
}
