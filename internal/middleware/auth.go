package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abdout/abushala-backend/internal/apperrors"
	"github.com/abdout/abushala-backend/internal/core/domain"
	portssvc "github.com/abdout/abushala-backend/internal/core/ports/services"
)

// SessionAuth creates a Gin middleware that resolves the opaque bearer
// token to an account. The account row is read on every request, so a role
// change takes effect without re-login.
func SessionAuth(authService portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.MsgUnauthorized})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.MsgUnauthorized})
			return
		}

		user, err := authService.ResolveSession(c.Request.Context(), parts[1])
		if err != nil {
			status := http.StatusUnauthorized
			msg := apperrors.MsgUnauthorized
			switch {
			case errors.Is(err, apperrors.ErrSessionExpired):
				logger.Warn("Session expired")
			case errors.Is(err, apperrors.ErrNotFound):
				logger.Warn("Unknown session token")
			default:
				logger.Error("Failed to resolve session", slog.String("error", err.Error()))
				status = http.StatusInternalServerError
				msg = apperrors.MsgInternal
			}
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userCtxKey, user)
		enrichedLogger := GetLoggerFromCtx(ctx).With(slog.String("user_id", user.UserID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAdmin rejects callers whose account does not hold the admin role.
// It must run after SessionAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		user, ok := GetUserFromContext(c)
		if !ok {
			logger.Error("RequireAdmin used without SessionAuth")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.MsgUnauthorized})
			return
		}
		if user.Role != domain.RoleAdmin {
			logger.Warn("Non-admin caller rejected", slog.String("role", string(user.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.DisplayMessage(apperrors.ErrForbidden)})
			return
		}

		c.Next()
	}
}
