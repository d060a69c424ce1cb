package router // route registration for the API, one function per role group

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/config"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/handler"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/middleware"
)

// RegisterRoutes registers endpoints that carry no auth at all.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the token endpoints under /v1/auth.  Logout is
// also reachable with a bearer token so a system admin can revoke all
// of their sessions; JWTAuth is deliberately not applied here since a
// body-supplied refresh token is enough.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/club-login", a.ClubLogin)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	// Bearer-authenticated logout revokes all of the admin's sessions.
	e.POST("/v1/logout", a.Logout, middleware.JWTAuth(jwtSecret))

	// Once bootstrapped, further admins are created by an existing one.
	e.POST("/v1/system/admins", a.Register,
		middleware.JWTAuth(jwtSecret),
		middleware.RequireSystemAdmin,
	)
}

// RegisterPublic registers the anonymous player view.  These routes get
// the rate limiter and the Redis response cache; everything else stays
// uncached so admins always read their own writes.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, rdb *redis.Client) {
	g := e.Group("/v1",
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)
	g.GET("/clubs", p.ListClubs)
	g.GET("/clubs/:id/availability", p.GetAvailability)
}

// RegisterClubAdmin registers the booking lifecycle under /v1/club.
// The club scope comes from the token, never from the URL.
func RegisterClubAdmin(e *echo.Echo, h *handler.ClubHandler, jwtSecret string) {
	g := e.Group("/v1/club",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireClubAdmin,
	)
	g.GET("/availability", h.GetAvailability)
	g.POST("/bookings", h.CreateBooking)
	g.PATCH("/bookings/:id", h.UpdateBooking)
	g.DELETE("/bookings/:id", h.CancelBooking)
}

// RegisterSystemAdmin registers club, court and hours administration
// under /v1/system.
func RegisterSystemAdmin(e *echo.Echo, h *handler.SystemHandler, jwtSecret string) {
	g := e.Group("/v1/system",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireSystemAdmin,
	)

	// ---- Clubs ----
	g.POST("/clubs", h.CreateClub)
	g.GET("/clubs", h.ListClubs)
	g.PUT("/clubs/:id", h.UpdateClub)
	g.PUT("/clubs/:id/password", h.UpdateClubPassword)

	// ---- Courts ----
	g.POST("/clubs/:id/courts", h.CreateCourt)
	g.GET("/clubs/:id/courts", h.ListCourts)
	g.PUT("/courts/:id", h.UpdateCourt)
	g.PUT("/courts/:id/status", h.UpdateCourtStatus)
	g.DELETE("/courts/:id", h.DeleteCourt)

	// ---- Operating hours ----
	g.GET("/clubs/:id/hours", h.GetClubHours)
	g.PUT("/clubs/:id/hours", h.SetClubHours)
}
