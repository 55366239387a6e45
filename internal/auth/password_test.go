package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEqual(t, "pw123", hash)

	assert.True(t, CheckPasswordHash("pw123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("pw123", "not-a-bcrypt-hash"))
}

// Short passwords are accepted unchanged; the store imposes no strength
// rule beyond what the frontend enforces.
func TestHashPassword_ShortPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("pw123", hash))
}
