package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/abdout/abushala-backend/internal/core/domain"
)

// userCtxKey is the key under which the authenticated account is stored in
// the request context.
const userCtxKey = contextKey("user")

// GetUserFromContext retrieves the authenticated account from the request
// context. The account was loaded fresh by SessionAuth, so its role is
// current.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	user, ok := c.Request.Context().Value(userCtxKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// GetUserIDFromContext retrieves the authenticated account id from the
// request context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	user, ok := GetUserFromContext(c)
	if !ok {
		return "", false
	}
	return user.UserID, true
}
