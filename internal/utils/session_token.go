package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// sessionTokenBytes is the entropy of an opaque session token; the hex
// encoding is twice as long.
const sessionTokenBytes = 32

// GenerateSessionToken returns a new opaque session token: hex-encoded
// cryptographically secure random bytes.
func GenerateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashSessionToken returns the SHA256 hash of a raw session token. Only the
// hash is persisted, so a leaked sessions table does not leak usable tokens.
func HashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
