package domain

import (
	"time"
)

// DefaultAvatarURL is assigned to accounts registered without an avatar.
const DefaultAvatarURL = "https://www.gravatar.com/avatar/?d=mp"

// User represents a registered account in the system.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthToken holds a signed access token returned on login and registration.
type AuthToken struct {
	AccessToken string `json:"access_token"`
}
