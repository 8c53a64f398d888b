package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "dias", "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "dias", claims.Username)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", "dias", "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("user-1", "dias", "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "test-secret")
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", "test-secret")
	assert.Error(t, err)
}
