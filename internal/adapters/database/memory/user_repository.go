package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/abdout/abushala-backend/internal/apperrors"
	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/core/ports"
)

// UserRepository keeps the whole account collection as an in-process
// snapshot, mirroring the client-only variant's key-value persistence. The
// mutex makes every read-then-write atomic, including the last-admin guard.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

var _ ports.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateEmail, user.Email)
		}
	}
	r.users[user.UserID] = user
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *UserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	if offset >= len(users) {
		return []domain.User{}, nil
	}
	end := offset + limit
	if end > len(users) {
		end = len(users)
	}
	return users[offset:end], nil
}

func (r *UserRepository) SetUserRole(ctx context.Context, userID string, role domain.Role, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}

	if role != domain.RoleAdmin && user.Role == domain.RoleAdmin {
		admins := 0
		for _, u := range r.users {
			if u.Role == domain.RoleAdmin {
				admins++
			}
		}
		if admins <= 1 {
			return apperrors.ErrLastAdmin
		}
	}

	user.Role = role
	user.UpdatedAt = updatedAt
	r.users[userID] = user
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = updatedAt
	r.users[userID] = user
	return nil
}

func (r *UserRepository) CountAdmins(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, user := range r.users {
		if user.Role == domain.RoleAdmin {
			count++
		}
	}
	return count, nil
}
