package models

import "time"

// PasswordReset is the one live reset challenge a user may hold.
// It is single-use: a new request overwrites it, a successful password
// change deletes it.
type PasswordReset struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Code      string    `json:"-"` // 6-digit code, never serialized
	ExpiresAt time.Time `json:"expires_at"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}
