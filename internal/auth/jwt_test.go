package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	m := NewJWTManager("test-secret-key-for-testing", 15*time.Minute)

	token, err := m.GenerateAccessToken("u-1", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "razorsnreviews-api", claims.Issuer)
}

func TestJWTManager_Validate_WrongSecret(t *testing.T) {
	m := NewJWTManager("secret-one", 15*time.Minute)
	other := NewJWTManager("secret-two", 15*time.Minute)

	token, err := m.GenerateAccessToken("u-1", "alice@example.com")
	require.NoError(t, err)

	claims, err := other.ValidateAccessToken(token)
	assert.Nil(t, claims)
	require.Error(t, err)
}

func TestJWTManager_Validate_Expired(t *testing.T) {
	m := NewJWTManager("test-secret-key-for-testing", -1*time.Minute)

	token, err := m.GenerateAccessToken("u-1", "alice@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	assert.Nil(t, claims)
	require.Error(t, err)
}

func TestJWTManager_Validate_Garbage(t *testing.T) {
	m := NewJWTManager("test-secret-key-for-testing", 15*time.Minute)

	claims, err := m.ValidateAccessToken("not.a.token")
	assert.Nil(t, claims)
	require.Error(t, err)
}
