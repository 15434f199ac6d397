package domain

import "time"

// Session binds an opaque bearer token to an account. Only the SHA256 hash
// of the token is persisted; the raw token is handed to the client once at
// login. Role is not cached here: the account row is read on every request,
// so a role change takes effect on the next read.
type Session struct {
	TokenHash string    `json:"-"`
	UserID    string    `json:"userID"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session has passed its expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
