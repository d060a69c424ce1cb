package model

import "time"

// Court status values.  A court that is inactive is withdrawn from the
// availability grid entirely rather than shown as unavailable.
const (
	CourtActive   = "active"
	CourtInactive = "inactive"
)

// Surfaces enumerates the playing surfaces a court can have.
var Surfaces = []string{"Hard", "Clay", "Grass"}

// Court represents a single tennis court belonging to exactly one club.
// Deleting a court removes its operating hours and bookings with it.
//
// Fields:
//
//	ID        – primary key identifier.
//	ClubID    – owning club.
//	Name      – display name (e.g. "Court 1").
//	Surface   – one of the Surfaces values.
//	Status    – CourtActive or CourtInactive.
//	CreatedAt – creation timestamp.
//	UpdatedAt – last update timestamp.
type Court struct {
	ID        uint64    `json:"id"`      // courts.id
	ClubID    uint64    `json:"club_id"` // courts.club_id
	Name      string    `json:"name"`    // courts.name
	Surface   string    `json:"surface"` // courts.surface
	Status    string    `json:"status"`  // courts.status
	CreatedAt time.Time `json:"-"`       // courts.created_at
	UpdatedAt time.Time `json:"-"`       // courts.updated_at
}

// ValidSurface reports whether s is one of the allowed surface types.
func ValidSurface(s string) bool {
	for _, v := range Surfaces {
		if v == s {
			return true
		}
	}
	return false
}
