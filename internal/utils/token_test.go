package utils_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdout/abushala-backend/internal/utils"
)

func TestGenerateSessionToken_UniqueAndOpaque(t *testing.T) {
	first, err := utils.GenerateSessionToken()
	require.NoError(t, err)
	second, err := utils.GenerateSessionToken()
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}

func TestHashSessionToken_Deterministic(t *testing.T) {
	token, err := utils.GenerateSessionToken()
	require.NoError(t, err)

	hash := utils.HashSessionToken(token)
	assert.Len(t, hash, 64)
	assert.NotEqual(t, token, hash)
	assert.Equal(t, hash, utils.HashSessionToken(token))
}

func TestResetToken_RoundTrip(t *testing.T) {
	userID := uuid.NewString()

	token, err := utils.GenerateResetToken(userID, "secret", 15*time.Minute, "test-issuer")
	require.NoError(t, err)

	gotID, err := utils.ParseResetToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestResetToken_WrongSecretRejected(t *testing.T) {
	token, err := utils.GenerateResetToken(uuid.NewString(), "secret", 15*time.Minute, "test-issuer")
	require.NoError(t, err)

	_, err = utils.ParseResetToken(token, "other-secret")
	assert.Error(t, err)
}

func TestResetToken_ExpiredRejected(t *testing.T) {
	token, err := utils.GenerateResetToken(uuid.NewString(), "secret", -time.Minute, "test-issuer")
	require.NoError(t, err)

	_, err = utils.ParseResetToken(token, "secret")
	assert.Error(t, err)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("secret123", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}
