package handler // handler defines HTTP handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

const dbTimeout = 5 * time.Second

// reqCtx derives a bounded context for repository calls.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// todayUTC returns the canonical play date.  The server computes it
// once per request in UTC so every court in one response shares the
// same day, even across a local midnight.
func todayUTC() string {
	return time.Now().UTC().Format("2006-01-02")
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}
