// Package queue defines message payloads exchanged over the message broker.
package queue

// Booking event actions.
const (
	ActionConfirmed = "confirmed"
	ActionCancelled = "cancelled"
)

// BookingEvent is published whenever a slot is booked or freed.  It
// carries enough for downstream consumers to log or notify without
// querying the primary database.
type BookingEvent struct {
	Action     string `json:"action"` // confirmed | cancelled
	BookingID  uint64 `json:"booking_id"`
	ClubID     uint64 `json:"club_id"`
	ClubName   string `json:"club_name"`
	CourtID    uint64 `json:"court_id"`
	CourtName  string `json:"court_name"`
	PlayDate   string `json:"play_date"` // YYYY-MM-DD
	Hour       int    `json:"hour"`      // 0-23, slot start
	PlayerName string `json:"player_name"`
	MemberID   string `json:"member_id"`
	OccurredAt string `json:"occurred_at"` // RFC 3339 UTC
}
