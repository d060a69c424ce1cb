package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/access"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/utils"
)

const testSecret = "test-secret"

func doAuthed(t *testing.T, token string, mw ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	e.GET("/x", h)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec := doAuthed(t, "", JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	rec := doAuthed(t, "not-a-jwt", JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 7, access.ClaimSystemAdmin, 5)
	require.NoError(t, err)
	rec := doAuthed(t, tok.Token, JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthSystemAdmin(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, access.ClaimSystemAdmin, 5)
	require.NoError(t, err)
	rec := doAuthed(t, tok.Token, JWTAuth(testSecret), RequireSystemAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthClubAdminScope(t *testing.T) {
	tok, err := utils.NewClubAccessToken(testSecret, 42, access.ClaimClubAdmin, 5)
	require.NoError(t, err)

	var principal access.Role
	e := echo.New()
	e.GET("/x", func(c echo.Context) error {
		principal = Principal(c)
		return c.NoContent(http.StatusOK)
	}, JWTAuth(testSecret), RequireClubAdmin)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	admin, ok := principal.(access.ClubAdmin)
	require.True(t, ok)
	assert.Equal(t, uint64(42), admin.ClubID)
}

func TestRoleGatesAreDisjoint(t *testing.T) {
	club, err := utils.NewClubAccessToken(testSecret, 42, access.ClaimClubAdmin, 5)
	require.NoError(t, err)
	sys, err := utils.NewAccessToken(testSecret, 7, access.ClaimSystemAdmin, 5)
	require.NoError(t, err)

	rec := doAuthed(t, club.Token, JWTAuth(testSecret), RequireSystemAdmin)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doAuthed(t, sys.Token, JWTAuth(testSecret), RequireClubAdmin)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUnknownRoleClaimRejected(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, "PLAYER", 5)
	require.NoError(t, err)
	rec := doAuthed(t, tok.Token, JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
