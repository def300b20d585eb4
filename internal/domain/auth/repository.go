package auth

import (
	"context"

	"traso/internal/core/id"
)

// UserRepository defines persistence for users.
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id id.ID) (*User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Update overwrites an existing user
	Update(ctx context.Context, user *User) error

	// Exists checks if a username is taken
	Exists(ctx context.Context, username string) (bool, error)
}
