package model

import (
	"errors"
	"strings"
	"time"
)

// BookingConfirmed is the only status the lifecycle ever writes.  The
// column exists for forward compatibility; cancellation deletes the row
// instead of transitioning it.
const BookingConfirmed = "confirmed"

// ErrValidation is returned when a required booking field is empty.
var ErrValidation = errors.New("validation failed")

// Booking records a confirmed reservation of one court for one hour on
// one calendar date.  At most one confirmed booking may exist per
// (court, date, hour) cell; the database enforces this with a unique key.
//
// Fields:
//
//	ID         – primary key identifier.
//	CourtID    – court being reserved.
//	PlayDate   – calendar date (YYYY-MM-DD).
//	Hour       – hour-of-day bucket (0-23).
//	PlayerName – name entered by the admin taking the booking.
//	MemberID   – club membership identifier of the player.
//	Status     – always BookingConfirmed.
//	CreatedAt  – creation timestamp.
//	UpdatedAt  – last update timestamp.
type Booking struct {
	ID         uint64    `json:"id"`          // bookings.id
	CourtID    uint64    `json:"court_id"`    // bookings.court_id
	PlayDate   string    `json:"date"`        // bookings.play_date
	Hour       int       `json:"hour"`        // bookings.hour
	PlayerName string    `json:"player_name"` // bookings.player_name
	MemberID   string    `json:"member_id"`   // bookings.member_id
	Status     string    `json:"status"`      // bookings.status
	CreatedAt  time.Time `json:"-"`           // bookings.created_at
	UpdatedAt  time.Time `json:"-"`           // bookings.updated_at
}

// ValidateBookingInput re-checks the fields the UI is supposed to have
// validated already.  The manager rejects empty values itself so the
// invariant does not depend on any particular client.
func ValidateBookingInput(playerName, memberID string) error {
	if strings.TrimSpace(playerName) == "" || strings.TrimSpace(memberID) == "" {
		return ErrValidation
	}
	return nil
}
