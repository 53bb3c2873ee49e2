package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenDerivesSalonClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	token, err := GenerateToken(userID)
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, userID, claims["sub"])
	require.Equal(t, userID, claims["salonId"], "salon scope is the owner's user ID")
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	require.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	require.True(t, CheckPasswordHash("correct horse battery staple", hash))
	require.False(t, CheckPasswordHash("wrong password", hash))
}
