package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	tokenString, err := GenerateJWT(42, "scorer", testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateJWT(tokenString, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "scorer", claims.Role)
	assert.Equal(t, "gully", claims.Issuer)
}

func TestValidateJWTRejections(t *testing.T) {
	tokenString, err := GenerateJWT(42, "scorer", testSecret, 15)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ValidateJWT(tokenString, "other-secret")
		assert.Error(t, err)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := ValidateJWT("", testSecret)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := GenerateJWT(42, "scorer", testSecret, -1)
		require.NoError(t, err)
		_, err = ValidateJWT(expired, testSecret)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ValidateJWT("not.a.jwt", testSecret)
		assert.Error(t, err)
	})
}
