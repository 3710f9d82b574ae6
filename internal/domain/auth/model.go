// Package auth provides the owner session: credential verification and
// access-token issuing. The content subsystem derives its owner scope
// from the session established here.
package auth

import (
	"context"
	"time"
)

// User is a site owner account.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	DisplayName  string    `db:"display_name" json:"displayName"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// UserRepository reads owner accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName"`
}
