// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios: a slot
// that is already taken is an expected domain outcome, not a server
// fault, and must surface as a conflict rather than a 500.
package repository

import (
	"errors"
	"strings"
)

// ErrForbidden is returned when the caller attempts an operation on a
// resource outside their scope, such as a club admin touching another
// club's court. Handlers translate this into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrSlotTaken is returned when a booking insert loses the race for a
// (court, date, hour) cell: a confirmed booking already occupies it.
// Handlers translate this into an HTTP 409 response.
var ErrSlotTaken = errors.New("slot already booked")

// ErrBookingNotFound is returned when a booking id does not resolve to
// an existing confirmed booking. Cancelling an already-cancelled booking
// is indistinguishable from cancelling one that never existed; both
// report this error.
var ErrBookingNotFound = errors.New("booking not found")

// ErrClubNotFound is returned when a club cannot be found.
var ErrClubNotFound = errors.New("club not found")

// ErrCourtNotFound is returned when a court cannot be found.
var ErrCourtNotFound = errors.New("court not found")

// isDuplicateKey reports whether err is the MySQL duplicate-entry error
// (code 1062). The bookings table carries a unique key over
// (court_id, play_date, hour), so a duplicate-entry failure on insert is
// exactly the lost-race case.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "1062")
}
