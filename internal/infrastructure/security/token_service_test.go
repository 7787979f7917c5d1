package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j4rl/barcraft/internal/domain/user"
	"github.com/j4rl/barcraft/internal/infrastructure/config"
)

func newTestUser(t *testing.T, admin bool) *user.User {
	t.Helper()

	u, err := user.New("Taylor", "taylor@example.com", "password123", "en")
	require.NoError(t, err)
	u.Approve()
	u.SetAdmin(admin)
	return u
}

func TestIssueAndValidateToken(t *testing.T) {
	service := NewTokenService(config.AuthConfig{
		JWTSecret:     "test-secret-key-for-tokens",
		JWTExpiration: time.Hour,
	})

	u := newTestUser(t, true)

	token, err := service.IssueToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, u.ID().String(), claims.UserID)
	assert.Equal(t, "taylor@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "barcraft", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService(config.AuthConfig{
		JWTSecret:     "first-secret",
		JWTExpiration: time.Hour,
	})
	verifier := NewTokenService(config.AuthConfig{
		JWTSecret:     "second-secret",
		JWTExpiration: time.Hour,
	})

	token, err := issuer.IssueToken(newTestUser(t, false))
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	service := NewTokenService(config.AuthConfig{
		JWTSecret:     "test-secret-key-for-tokens",
		JWTExpiration: -time.Minute,
	})

	token, err := service.IssueToken(newTestUser(t, false))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := NewTokenService(config.AuthConfig{
		JWTSecret:     "test-secret-key-for-tokens",
		JWTExpiration: time.Hour,
	})

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}
