package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/access"
)

// Principal reads the resolved role variant from the request context.
// It returns an anonymous Player when no auth middleware ran.
func Principal(c echo.Context) access.Role {
	if r, ok := c.Get(CtxPrincipal).(access.Role); ok {
		return r
	}
	return access.Player{}
}

// RequireClubAdmin rejects requests whose principal is not a club admin.
// The admitted principal's club id scopes every query downstream; it is
// never read from the request.
func RequireClubAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := Principal(c).(access.ClubAdmin); !ok {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return next(c)
	}
}

// RequireSystemAdmin rejects requests whose principal cannot administer
// clubs, courts and operating hours.
func RequireSystemAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !access.CanAdministerSystem(Principal(c)) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return next(c)
	}
}
