package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/core/tx"
	"traso/pkg/logger"
)

// ServiceConfig holds auth service configuration.
type ServiceConfig struct {
	MaxLoginAttempts  int
	LockDuration      time.Duration
	PasswordMinLength int
}

// DefaultServiceConfig returns default configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxLoginAttempts:  5,
		LockDuration:      15 * time.Minute,
		PasswordMinLength: 8,
	}
}

// Service provides authentication logic.
type Service struct {
	userRepo   UserRepository
	txManager  tx.Manager
	jwtService *JWTService
	config     ServiceConfig
}

// NewService creates a new auth service.
func NewService(userRepo UserRepository, txManager tx.Manager, jwtService *JWTService, config ServiceConfig) *Service {
	return &Service{
		userRepo:   userRepo,
		txManager:  txManager,
		jwtService: jwtService,
		config:     config,
	}
}

// Register creates a new operator account.
func (s *Service) Register(ctx context.Context, username, password, displayName string) (*User, error) {
	if username == "" {
		return nil, apperror.NewValidation("username is required").WithDetail("field", "username")
	}
	if len(password) < s.config.PasswordMinLength {
		return nil, apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", s.config.PasswordMinLength),
		).WithDetail("field", "password")
	}

	exists, err := s.userRepo.Exists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username exists: %w", err)
	}
	if exists {
		return nil, apperror.NewDuplicate("user", "username", username)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := NewUser(username, string(passwordHash))
	user.DisplayName = displayName

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user registered",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// Login authenticates a user and issues an access token.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Token, *User, error) {
	user, err := s.userRepo.GetByUsername(ctx, creds.Username)
	if err != nil {
		return nil, nil, apperror.NewUnauthorized("invalid credentials")
	}
	if err := user.CanLogin(); err != nil {
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		user.RecordFailedLogin(s.config.MaxLoginAttempts, s.config.LockDuration)
		_ = s.userRepo.Update(ctx, user)
		return nil, nil, apperror.NewUnauthorized("invalid credentials")
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(user.ID.String(), user.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("generate access token: %w", err)
	}

	user.RecordSuccessfulLogin()
	_ = s.userRepo.Update(ctx, user)

	logger.Info(ctx, "user logged in",
		"user_id", user.ID,
		"username", user.Username)

	return &Token{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		TokenType:   "Bearer",
	}, user, nil
}

// GetUserByID retrieves a user.
func (s *Service) GetUserByID(ctx context.Context, userID id.ID) (*User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NewNotFound("user", userID.String())
	}
	return user, nil
}
