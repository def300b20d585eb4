// Package auth provides authentication for back-office operators.
package auth

import (
	"context"
	"time"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
)

// User represents a back-office operator account.
type User struct {
	ID                  id.ID      `db:"id" json:"id"`
	Username            string     `db:"username" json:"username"`
	PasswordHash        string     `db:"password_hash" json:"-"`
	DisplayName         string     `db:"display_name" json:"displayName,omitempty"`
	IsActive            bool       `db:"is_active" json:"isActive"`
	LastLoginAt         *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
	FailedLoginAttempts int        `db:"failed_login_attempts" json:"-"`
	LockedUntil         *time.Time `db:"locked_until" json:"-"`
	CreatedAt           time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updatedAt"`
	Version             int        `db:"version" json:"version"`
}

// NewUser creates a new user.
func NewUser(username, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           id.New(),
		Username:     username,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      1,
	}
}

// Validate validates user data.
func (u *User) Validate(ctx context.Context) error {
	if u.Username == "" {
		return apperror.NewValidation("username is required").WithDetail("field", "username")
	}
	return nil
}

// IsLocked returns true if the account is locked.
func (u *User) IsLocked() bool {
	if u.LockedUntil == nil {
		return false
	}
	return time.Now().Before(*u.LockedUntil)
}

// CanLogin checks if the user can log in.
func (u *User) CanLogin() error {
	if !u.IsActive {
		return apperror.NewForbidden("account is disabled")
	}
	if u.IsLocked() {
		return apperror.NewForbidden("account is temporarily locked")
	}
	return nil
}

// RecordFailedLogin increments the failed login counter and locks the account
// once maxAttempts is reached.
func (u *User) RecordFailedLogin(maxAttempts int, lockDuration time.Duration) {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		lockUntil := time.Now().Add(lockDuration)
		u.LockedUntil = &lockUntil
	}
}

// RecordSuccessfulLogin resets the failed login counter.
func (u *User) RecordSuccessfulLogin() {
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
	now := time.Now()
	u.LastLoginAt = &now
}

// Credentials for login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token is an issued access token.
type Token struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	TokenType   string    `json:"tokenType"`
}
