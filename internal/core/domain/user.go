package domain

import "time"

// SessionTTL is the fixed validity window of a session token. Tokens are not refreshable.
const SessionTTL = 24 * time.Hour

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 6

// MaxPasswordBytes is the bcrypt input limit.
const MaxPasswordBytes = 72

// User models a registered account in the credential store.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"-"`
}

// PublicUser is the view of a user that is safe to return to clients.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Public strips the password hash and timestamps.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}

// Claims are the identity facts carried by a verified session token.
type Claims struct {
	UserID   int64
	Username string
	IsAdmin  bool
}
