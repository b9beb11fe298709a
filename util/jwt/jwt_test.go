package jwt

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseAuth(t *testing.T) {
	token, err := Issue("test-secret", 42, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	for _, header := range []string{token, "Bearer " + token} {
		tok, err := ParseAuth(header, "test-secret")
		require.NoError(t, err)
		require.True(t, tok.Valid)

		claims, ok := tok.Claims.(gojwt.MapClaims)
		require.True(t, ok)
		require.Equal(t, float64(42), claims["sub"])
	}
}

func TestParseAuth_Rejections(t *testing.T) {
	token, err := Issue("test-secret", 42, 1)
	require.NoError(t, err)

	_, err = ParseAuth(token, "other-secret")
	require.Error(t, err)

	_, err = ParseAuth("", "test-secret")
	require.Error(t, err)

	_, err = ParseAuth("Bearer ", "test-secret")
	require.Error(t, err)

	_, err = ParseAuth("not.a.token", "test-secret")
	require.Error(t, err)
}
