package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "chi.lan")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	userCtx, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userCtx.UserID)
	assert.Equal(t, "chi.lan", userCtx.Username)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(DefaultJWTConfig("secret-a"))
	verifier := NewJWTService(DefaultJWTConfig("secret-b"))

	token, _, err := issuer.GenerateAccessToken("user-1", "chi.lan")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := DefaultJWTConfig("test-secret")
	cfg.AccessTokenTTL = -time.Minute
	svc := NewJWTService(cfg)

	token, _, err := svc.GenerateAccessToken("user-1", "chi.lan")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestUser_Lockout(t *testing.T) {
	u := NewUser("chi.lan", "hash")

	for i := 0; i < 4; i++ {
		u.RecordFailedLogin(5, 15*time.Minute)
	}
	assert.NoError(t, u.CanLogin())

	u.RecordFailedLogin(5, 15*time.Minute)
	assert.Error(t, u.CanLogin())

	u.RecordSuccessfulLogin()
	assert.NoError(t, u.CanLogin())
	assert.Zero(t, u.FailedLoginAttempts)
}
