package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityhub-backend/internal/security"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := security.NewTokenManager("test-secret", 60)

	token, err := tm.GenerateAccessToken(42, "admin@test.com", []string{"ADMIN"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, "admin@test.com", claims.Email)
	assert.Equal(t, []string{"ADMIN"}, claims.Roles)
	assert.Equal(t, "communityhub", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := security.NewTokenManager("secret-a", 60).GenerateAccessToken(1, "", nil)
	require.NoError(t, err)

	_, err = security.NewTokenManager("secret-b", 60).ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := security.NewTokenManager("test-secret", -1).GenerateAccessToken(1, "", nil)
	require.NoError(t, err)

	_, err = security.NewTokenManager("test-secret", 60).ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := security.NewTokenManager("test-secret", 60).ValidateToken("not.a.token")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
