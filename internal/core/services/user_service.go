package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abdout/abushala-backend/internal/apperrors"
	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/core/ports"
	portssvc "github.com/abdout/abushala-backend/internal/core/ports/services"
	"github.com/abdout/abushala-backend/internal/dto"
)

type UserService struct {
	userRepo ports.UserRepository
	auth     portssvc.AuthSvcFacade
}

func NewUserService(userRepo ports.UserRepository, auth portssvc.AuthSvcFacade) *UserService {
	return &UserService{userRepo: userRepo, auth: auth}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// SetUserRole changes the target account's role. The repository refuses to
// demote the sole remaining admin; the check and the write are atomic in
// the adapter. The returned flag reports whether the actor demoted their
// own account, so the client can force re-authentication.
func (s *UserService) SetUserRole(ctx context.Context, targetUserID string, role domain.Role, actorUserID string) (bool, error) {
	if !role.IsValid() {
		return false, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	if err := s.userRepo.SetUserRole(ctx, targetUserID, role, time.Now()); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLastAdmin):
			return false, apperrors.ErrLastAdmin
		case errors.Is(err, apperrors.ErrNotFound):
			return false, apperrors.ErrNotFound
		default:
			return false, fmt.Errorf("failed to set role: %w", err)
		}
	}

	removedSelf := targetUserID == actorUserID && role != domain.RoleAdmin
	return removedSelf, nil
}

// CreateAdmin registers a new account with the admin role, reusing the
// registration checks (password length, duplicate email).
func (s *UserService) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (*domain.User, error) {
	registerReq := dto.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	user, err := s.auth.Register(ctx, registerReq, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return user, nil
}
