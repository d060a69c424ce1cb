package model

import "errors"

// ErrInvalidHourRange is returned when an operating window does not
// satisfy 0 <= start < end <= 23.
var ErrInvalidHourRange = errors.New("invalid hour range")

// DefaultOpenHour and DefaultCloseHour seed the operating hours of a
// newly created court (8:00 through 20:00 inclusive), matching the hours
// most parks courts keep before a club edits them.
const (
	DefaultOpenHour  = 8
	DefaultCloseHour = 20
)

// OperatingHour marks a single hour-of-day at which a court accepts
// bookings.  A court's schedule is the set of its rows in `court_hours`;
// there is at most one row per (court, hour) pair.
type OperatingHour struct {
	CourtID uint64 // court_hours.court_id
	Hour    int    // court_hours.hour (0-23)
}

// ValidateHourRange checks an operating window edit.  The start hour is
// inclusive and the end hour exclusive, both within 0-23.  Degenerate
// (start == end) and inverted windows are rejected.
func ValidateHourRange(start, end int) error {
	if start < 0 || start > 23 || end < 0 || end > 23 || start >= end {
		return ErrInvalidHourRange
	}
	return nil
}

// HoursInRange expands a validated window [start, end) into the explicit
// hour list stored per court.
func HoursInRange(start, end int) []int {
	hours := make([]int, 0, end-start)
	for h := start; h < end; h++ {
		hours = append(hours, h)
	}
	return hours
}
