package models

import "time"

// RefreshToken is a persisted refresh token joined with the current role of
// its owner.
type RefreshToken struct {
	Token     string
	UserID    int64
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the token expired before now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
