package middleware // reusable HTTP middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/access"
)

// Context keys populated by JWTAuth.
const (
	CtxSubject   = "subject"   // token subject as uint64 (user id or club id)
	CtxPrincipal = "principal" // access.Role resolved from the claims
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and resolves its claims into an access.Role stored in the
// request context.  Club admin tokens carry a club_id claim; system
// admin tokens do not.  The secret must match the one used at issue.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			role, _ := claims["role"].(string)
			principal, err := access.FromClaims(role, claimUint(claims, "club_id"))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			c.Set(CtxSubject, claimUint(claims, "sub"))
			c.Set(CtxPrincipal, principal)
			return next(c)
		}
	}
}

// claimUint reads a numeric claim.  JSON numbers decode as float64.
func claimUint(claims jwt.MapClaims, key string) uint64 {
	if f, ok := claims[key].(float64); ok && f > 0 {
		return uint64(f)
	}
	return 0
}
