package dto

import (
	"time"

	"traso/internal/domain/auth"
)

// LoginRequest for authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Credentials converts the request to domain credentials.
func (r LoginRequest) Credentials() auth.Credentials {
	return auth.Credentials{Username: r.Username, Password: r.Password}
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// NewLoginResponse builds the login response.
func NewLoginResponse(token *auth.Token, user *auth.User) LoginResponse {
	return LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		User:        FromUser(user),
	}
}

// UserResponse is the API view of an operator account.
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"displayName,omitempty"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// FromUser maps a user to its API view. Credentials never leave the server.
func FromUser(u *auth.User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		DisplayName: u.DisplayName,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
	}
}

// RegisterRequest creates an operator account.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName"`
}
