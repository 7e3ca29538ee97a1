package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	SetJWTKey("test-signing-key")

	access, refresh, err := GenerateTokens("student@example.com", "user-123")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "student@example.com", claims.Email)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	SetJWTKey("key-one")
	access, _, err := GenerateTokens("student@example.com", "user-123")
	require.NoError(t, err)

	SetJWTKey("key-two")
	_, err = ValidateToken(access)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hashed)

	assert.True(t, VerifyPassword(hashed, "hunter22"))
	assert.False(t, VerifyPassword(hashed, "hunter23"))
}
