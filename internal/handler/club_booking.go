package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/access"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/middleware"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/model"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/queue"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/repository"
	queue_publisher "github.com/petergabrielgreenberg/nyc-tennis-booking/internal/service"
)

// ClubHandler serves the club admin view: the club's own grid plus the
// booking lifecycle.  Every operation is scoped to the club id carried
// in the admin's token; the request never names a club.
type ClubHandler struct {
	Clubs    *repository.ClubRepo
	Courts   *repository.CourtRepo
	Hours    *repository.HourRepo
	Bookings *repository.BookingRepo
}

func NewClubHandler(clubs *repository.ClubRepo, courts *repository.CourtRepo, hours *repository.HourRepo, bookings *repository.BookingRepo) *ClubHandler {
	if clubs == nil || courts == nil || hours == nil || bookings == nil {
		panic("nil repository passed to NewClubHandler")
	}
	return &ClubHandler{Clubs: clubs, Courts: courts, Hours: hours, Bookings: bookings}
}

// adminClubID extracts the club scope of the authenticated admin.
func adminClubID(c echo.Context) (uint64, bool) {
	if a, ok := middleware.Principal(c).(access.ClubAdmin); ok {
		return a.ClubID, true
	}
	return 0, false
}

// GetAvailability handles GET /v1/club/availability: today's grid for
// the admin's own club.
func (h *ClubHandler) GetAvailability(c echo.Context) error {
	clubID, ok := adminClubID(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
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

type createBookingReq struct {
	CourtID    uint64 `json:"court_id"`
	Hour       int    `json:"hour"`
	PlayerName string `json:"player_name"`
	MemberID   string `json:"member_id"`
}

// CreateBooking handles POST /v1/club/bookings.  The insert races on
// the slot's unique key, so of two concurrent admins exactly one gets
// 201 and the other 409; there is no check-then-act window.  The cached
// public availability response is not invalidated here: it goes stale
// for at most CACHE_TTL, and the unique key still rejects a booking
// made against a stale grid.
func (h *ClubHandler) CreateBooking(c echo.Context) error {
	clubID, ok := adminClubID(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.CourtID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "court_id required"})
	}
	if req.Hour < 0 || req.Hour > 23 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "hour out of range"})
	}
	if err := model.ValidateBookingInput(req.PlayerName, req.MemberID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "player_name and member_id required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	court, err := h.Courts.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, repository.ErrCourtNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "court not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if court.ClubID != clubID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	b := &model.Booking{
		CourtID:    req.CourtID,
		PlayDate:   todayUTC(),
		Hour:       req.Hour,
		PlayerName: strings.TrimSpace(req.PlayerName),
		MemberID:   strings.TrimSpace(req.MemberID),
		Status:     model.BookingConfirmed,
	}
	if err := h.Bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slot already booked"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	h.publishEvent(ctx, queue.ActionConfirmed, b, clubID, court)
	return c.JSON(http.StatusCreated, b)
}

type updateBookingReq struct {
	PlayerName string `json:"player_name"`
	MemberID   string `json:"member_id"`
}

// UpdateBooking handles PATCH /v1/club/bookings/:id.  Only the player
// details change; moving a booking to another slot means cancelling and
// rebooking.
func (h *ClubHandler) UpdateBooking(c echo.Context) error {
	clubID, ok := adminClubID(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req updateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := model.ValidateBookingInput(req.PlayerName, req.MemberID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "player_name and member_id required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Bookings.UpdateDetailsForClub(ctx, id, clubID,
		strings.TrimSpace(req.PlayerName), strings.TrimSpace(req.MemberID))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	updated, err := h.Bookings.GetByIDForClub(ctx, id, clubID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// CancelBooking handles DELETE /v1/club/bookings/:id.  The row is
// removed outright; the slot is free again the moment the delete
// commits.  Cancelling twice yields 404 the second time.
func (h *ClubHandler) CancelBooking(c echo.Context) error {
	clubID, ok := adminClubID(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	// Snapshot for the cancelled event.  A details PATCH landing between
	// this read and the delete can leave the event with the older player
	// fields; the slot itself is still released exactly once.
	b, err := h.Bookings.GetByIDForClub(ctx, id, clubID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	if err := h.Bookings.DeleteForClub(ctx, id, clubID); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}

	var court *model.Court
	if cr, err := h.Courts.GetByID(ctx, b.CourtID); err == nil {
		court = cr
	}
	h.publishEvent(ctx, queue.ActionCancelled, b, clubID, court)
	return c.JSON(http.StatusOK, echo.Map{"message": "booking cancelled"})
}

// publishEvent emits a booking lifecycle event.  Failures are logged by
// the publisher and ignored here; the booking itself already committed.
func (h *ClubHandler) publishEvent(ctx context.Context, action string, b *model.Booking, clubID uint64, court *model.Court) {
	ev := queue.BookingEvent{
		Action:     action,
		BookingID:  b.ID,
		ClubID:     clubID,
		CourtID:    b.CourtID,
		PlayDate:   b.PlayDate,
		Hour:       b.Hour,
		PlayerName: b.PlayerName,
		MemberID:   b.MemberID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if court != nil {
		ev.CourtName = court.Name
	}
	if club, err := h.Clubs.GetByID(ctx, clubID); err == nil {
		ev.ClubName = club.Name
	}
	_ = queue_publisher.PublishBookingEvent(ctx, ev)
}
