package auth

import (
	"testing"

	"sentosa_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, secret string, ttl int) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttl
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t, "test-secret", 0)

	token, err := GenerateToken(42, "Admin", "avatar.png")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.StaffID)
	assert.Equal(t, "Admin", claims.Jabatan)
	assert.Equal(t, "avatar.png", claims.Image)
	// No TTL configured means no expiry claim at all.
	assert.Nil(t, claims.ExpiresAt)
}

func TestGenerateToken_WithTTL(t *testing.T) {
	setTestConfig(t, "test-secret", 60)

	token, err := GenerateToken(1, "Staff", "")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
}

func TestParseToken_Tampered(t *testing.T) {
	setTestConfig(t, "test-secret", 0)

	token, err := GenerateToken(7, "Admin", "")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseToken(tampered)
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig(t, "secret-one", 0)

	token, err := GenerateToken(7, "Admin", "")
	require.NoError(t, err)

	setTestConfig(t, "secret-two", 0)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig(t, "test-secret", 0)

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	setTestConfig(t, "", 0)

	_, err := GenerateToken(1, "Admin", "")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
