package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseClaims(t *testing.T, secret, token string) jwt.MapClaims {
	t.Helper()
	tok, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)
	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestNewClubAccessTokenCarriesClubID(t *testing.T) {
	at, err := NewClubAccessToken("s3cret", 42, "CLUB_ADMIN", 15)
	require.NoError(t, err)

	claims := parseClaims(t, "s3cret", at.Token)
	assert.Equal(t, "CLUB_ADMIN", claims["role"])
	assert.Equal(t, float64(42), claims["club_id"])
	assert.Equal(t, float64(42), claims["sub"])
}

func TestNewAccessTokenHasNoClubClaim(t *testing.T) {
	at, err := NewAccessToken("s3cret", 7, "SYSTEM_ADMIN", 15)
	require.NoError(t, err)

	claims := parseClaims(t, "s3cret", at.Token)
	assert.Equal(t, "SYSTEM_ADMIN", claims["role"])
	_, present := claims["club_id"]
	assert.False(t, present)
}

func TestHashRefreshRawIsStable(t *testing.T) {
	a := HashRefreshRaw("token-value")
	b := HashRefreshRaw("token-value")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // sha256 hex
	assert.NotEqual(t, a, HashRefreshRaw("other"))
}

func TestNewRefreshTokenIsRandom(t *testing.T) {
	r1, err := NewRefreshToken(7)
	require.NoError(t, err)
	r2, err := NewRefreshToken(7)
	require.NoError(t, err)
	assert.NotEqual(t, r1.Raw, r2.Raw)
	assert.Len(t, r1.Raw, 96)
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "hunter2"))
	assert.False(t, VerifyPassword(hash, "hunter3"))
}
