package authutils

import (
	"recruitment-backend/config"
	"recruitment-backend/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func initTestConfig() {
	conf := &config.Configuration{}
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 60
	conf.Auth.JWTRefreshExpireInSec = 120
	config.Conf = conf
}

func TestTokens(t *testing.T) {
	initTestConfig()

	t.Run(`refresh token`, func(t *testing.T) {
		token, err := GetRefreshToken("user-1", "Иван Петров")
		require.Nil(t, err)
		userID, err := ParseRefreshToken(token)
		require.Nil(t, err)
		require.Equal(t, "user-1", userID)
	})

	t.Run(`access token is not refresh token`, func(t *testing.T) {
		token, err := GetToken("user-1", "Иван Петров", "company-1", models.HRRole)
		require.Nil(t, err)
		_, err = ParseRefreshToken(token)
		require.NotNil(t, err)
	})

	t.Run(`broken token`, func(t *testing.T) {
		_, err := ParseRefreshToken("not-a-token")
		require.NotNil(t, err)
	})
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.Nil(t, err)
	require.NotEqual(t, "secret", hash)
	require.True(t, CheckPassword(hash, "secret"))
	require.False(t, CheckPassword(hash, "other"))
}
