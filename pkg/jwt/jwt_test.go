package jwt_test

import (
	"testing"
	"time"

	jwtutil "github.com/Daniyar457/Legacy_Vault/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := jwtutil.GenerateToken("64f1b2c3d4e5f67890123456", "user@example.com", "user", "user", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := jwtutil.ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "64f1b2c3d4e5f67890123456", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := jwtutil.GenerateToken("64f1b2c3d4e5f67890123456", "user@example.com", "user", "user", "secret", time.Hour)
	require.NoError(t, err)

	_, err = jwtutil.ParseToken(token, "other-secret")
	require.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	token, err := jwtutil.GenerateToken("", "admin@vault.local", "admin", "administrator", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = jwtutil.ParseToken(token, "secret")
	require.Error(t, err)
}
