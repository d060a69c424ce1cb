package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/model"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/repository"
)

type hoursReq struct {
	OpenHour  int `json:"open_hour"`  // inclusive
	CloseHour int `json:"close_hour"` // exclusive
}

// SetClubHours handles PUT /v1/system/clubs/:id/hours.  The window
// replaces every court's schedule in one transaction; an invalid range
// is rejected before anything is touched.  Bookings outside the new
// window are left alone.
func (h *SystemHandler) SetClubHours(c echo.Context) error {
	clubID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req hoursReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := model.ValidateHourRange(req.OpenHour, req.CloseHour); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hour range"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Hours.ReplaceForClub(ctx, clubID, req.OpenHour, req.CloseHour); err != nil {
		if errors.Is(err, repository.ErrClubNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "club not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"club_id":    clubID,
		"open_hour":  req.OpenHour,
		"close_hour": req.CloseHour,
	})
}

// GetClubHours handles GET /v1/system/clubs/:id/hours and returns the
// per-court hour lists.
func (h *SystemHandler) GetClubHours(c echo.Context) error {
	clubID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rows, err := h.Hours.ListByClub(ctx, clubID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	byCourt := make(map[uint64][]int)
	for _, r := range rows {
		byCourt[r.CourtID] = append(byCourt[r.CourtID], r.Hour)
	}
	return c.JSON(http.StatusOK, echo.Map{"club_id": clubID, "courts": byCourt})
}
