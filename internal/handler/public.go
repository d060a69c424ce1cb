package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/availability"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/model"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/repository"
)

// PublicHandler serves the anonymous player view: the club directory and
// the read-only availability grid.
type PublicHandler struct {
	Clubs    *repository.ClubRepo
	Courts   *repository.CourtRepo
	Hours    *repository.HourRepo
	Bookings *repository.BookingRepo
}

func NewPublicHandler(clubs *repository.ClubRepo, courts *repository.CourtRepo, hours *repository.HourRepo, bookings *repository.BookingRepo) *PublicHandler {
	if clubs == nil || courts == nil || hours == nil || bookings == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{Clubs: clubs, Courts: courts, Hours: hours, Bookings: bookings}
}

type clubPart struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Borough string `json:"borough"`
}

// ListClubs handles GET /v1/clubs.  Clubs come back grouped by borough
// in the canonical order, alphabetical within a borough.
func (h *PublicHandler) ListClubs(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	clubs, err := h.Clubs.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	model.SortClubs(clubs)

	items := make([]clubPart, 0, len(clubs))
	for _, cl := range clubs {
		items = append(items, clubPart{ID: cl.ID, Name: cl.Name, Borough: cl.Borough})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetAvailability handles GET /v1/clubs/:id/availability and returns
// today's grid for the club.  An unknown club id yields an empty grid,
// not an error; the player view treats it as a club with no courts.
func (h *PublicHandler) GetAvailability(c echo.Context) error {
	clubID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	date := todayUTC()
	grid, err := loadGrid(ctx, h.Courts, h.Hours, h.Bookings, clubID, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"club_id": clubID, "date": date, "grid": grid})
}

// loadGrid reads a club's courts, hours and bookings for one date and
// folds them into the availability grid.  Shared by the public and club
// admin views so both always see the same shape.
func loadGrid(ctx context.Context, courts *repository.CourtRepo, hours *repository.HourRepo, bookings *repository.BookingRepo, clubID uint64, date string) (availability.Grid, error) {
	cs, err := courts.ListByClub(ctx, clubID)
	if err != nil {
		return availability.Grid{}, err
	}
	hs, err := hours.ListByClub(ctx, clubID)
	if err != nil {
		return availability.Grid{}, err
	}
	bs, err := bookings.ListForClubDate(ctx, clubID, date)
	if err != nil {
		return availability.Grid{}, err
	}
	return availability.BuildGrid(cs, hs, bs), nil
}
