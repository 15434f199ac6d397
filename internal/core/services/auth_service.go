package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/abdout/abushala-backend/internal/apperrors"
	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/core/ports"
	portssvc "github.com/abdout/abushala-backend/internal/core/ports/services"
	"github.com/abdout/abushala-backend/internal/dto"
	"github.com/abdout/abushala-backend/internal/utils"
)

const (
	// minRegisterPasswordLen applies at registration; password resets use
	// the looser reset minimum.
	minRegisterPasswordLen = 6
	minResetPasswordLen    = 4
)

type AuthService struct {
	userRepo    ports.UserRepository
	sessionRepo ports.SessionRepository

	sessionExpiry time.Duration
	resetSecret   string
	resetExpiry   time.Duration
	resetIssuer   string
}

// AuthServiceConfig carries the token parameters the auth service needs.
type AuthServiceConfig struct {
	SessionExpiry time.Duration
	ResetSecret   string
	ResetExpiry   time.Duration
	ResetIssuer   string
}

func NewAuthService(userRepo ports.UserRepository, sessionRepo ports.SessionRepository, cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		sessionExpiry: cfg.SessionExpiry,
		resetSecret:   cfg.ResetSecret,
		resetExpiry:   cfg.ResetExpiry,
		resetIssuer:   cfg.ResetIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// NormalizeEmail lowercases and trims an email for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. The checks run in a fixed order so the
// caller always sees the first failure: confirmation equality, password
// length, duplicate email. Nothing is written unless every check passes.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest, role domain.Role) (*domain.User, error) {
	if req.ConfirmPassword != nil && *req.ConfirmPassword != req.Password {
		return nil, apperrors.ErrPasswordMismatch
	}
	if utf8.RuneCountInString(req.Password) < minRegisterPasswordLen {
		return nil, apperrors.ErrPasswordTooShort
	}

	email := NormalizeEmail(req.Email)
	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if !role.IsValid() {
		role = domain.RoleUser
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &user, nil
}

// Login verifies credentials and issues an opaque session token. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email string, password string) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up account: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	session := domain.Session{
		TokenHash: utils.HashSessionToken(token),
		UserID:    user.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionExpiry),
	}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to persist session: %w", err)
	}

	return user, token, nil
}

// Logout deletes the session for the given raw token. Unknown tokens are a
// no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.DeleteSessionByTokenHash(ctx, utils.HashSessionToken(token)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ResolveSession maps a raw token to its account. Expired sessions are
// removed on sight. The account row is read fresh, so a demoted admin loses
// privileges on the next request.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	tokenHash := utils.HashSessionToken(token)
	session, err := s.sessionRepo.FindSessionByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.Expired(time.Now()) {
		_ = s.sessionRepo.DeleteSessionByTokenHash(ctx, tokenHash)
		return nil, apperrors.ErrSessionExpired
	}

	user, err := s.userRepo.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session account: %w", err)
	}
	return user, nil
}

// InitiatePasswordReset verifies the email belongs to an account and issues
// a short-lived reset token. The not-found failure is generic.
func (s *AuthService) InitiatePasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to look up account: %w", err)
	}

	token, err := utils.GenerateResetToken(user.UserID, s.resetSecret, s.resetExpiry, s.resetIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return token, nil
}

// CompletePasswordReset validates the reset token and overwrites the stored
// credential. Other sessions for the account stay valid.
func (s *AuthService) CompletePasswordReset(ctx context.Context, resetToken string, newPassword string) error {
	userID, err := utils.ParseResetToken(resetToken, s.resetSecret)
	if err != nil {
		return fmt.Errorf("%w: invalid reset token", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(newPassword) < minResetPasswordLen {
		return apperrors.ErrPasswordTooShort
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash, time.Now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
