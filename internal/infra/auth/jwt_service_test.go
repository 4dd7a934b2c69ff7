package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umithief/motovibe6/config"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"user", "admin"}

	token, err := jwtService.GenerateAccessToken(userID, "Ahmet", roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "Ahmet", claims.Name)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, time.Hour, jwtService.TokenTTL())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))

	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("secret", 0))
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, jwtService.TokenTTL())
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("secret", time.Hour))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("invalid.token.here")
	assert.Error(t, err)

	_, err = jwtService.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	signer, err := NewJWTService(newTestConfig("secret-one", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-two", time.Hour))
	require.NoError(t, err)

	token, err := signer.GenerateAccessToken(uuid.New(), "Ayşe", []string{"user"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issued := time.Now().Add(-time.Hour)
	impl.now = func() time.Time { return issued }
	token, err := impl.GenerateAccessToken(uuid.New(), "Ayşe", []string{"user"})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	assert.Error(t, err)
}
