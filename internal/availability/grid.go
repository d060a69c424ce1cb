// Package availability derives the bookable grid for a club and date.
// It is a pure computation over rows already loaded from the database:
// the grid is never cached inside this package and therefore can never
// be observed stale relative to the store snapshot it was built from.
package availability

import (
	"sort"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/model"
)

// Slot describes one (court, hour) cell of the grid.  When a confirmed
// booking occupies the cell, Available is false and Booking carries it.
type Slot struct {
	Court     model.Court    `json:"court"`
	Hour      int            `json:"hour"`
	Available bool           `json:"available"`
	Booking   *model.Booking `json:"booking,omitempty"`
}

// Grid is the availability view for a single club on a single date.
// Hours is the sorted row axis; Rows maps each hour to one slot per
// active court, in court order.
type Grid struct {
	Hours []int          `json:"hours"`
	Rows  map[int][]Slot `json:"rows"`
}

// BuildGrid computes the availability grid from a club's courts, their
// operating hours and the confirmed bookings for the target date.
//
// Inactive courts are absent from the grid entirely: withdrawing a court
// is a club decision, not a scheduling conflict, so it is not shown as
// unavailable.  The row axis is the union of the active courts' operating
// hours, ascending.  Within each hour row every active court appears,
// whether or not that hour is in the court's own schedule; operating
// hours shape the axis only.  Callers must pass bookings already filtered
// to the target date and confirmed status.
func BuildGrid(courts []model.Court, hours []model.OperatingHour, bookings []model.Booking) Grid {
	active := make([]model.Court, 0, len(courts))
	activeIDs := make(map[uint64]struct{}, len(courts))
	for _, c := range courts {
		if c.Status == model.CourtActive {
			active = append(active, c)
			activeIDs[c.ID] = struct{}{}
		}
	}

	hourSet := make(map[int]struct{})
	for _, h := range hours {
		if _, ok := activeIDs[h.CourtID]; ok {
			hourSet[h.Hour] = struct{}{}
		}
	}
	axis := make([]int, 0, len(hourSet))
	for h := range hourSet {
		axis = append(axis, h)
	}
	sort.Ints(axis)

	// Index bookings by (court, hour) for the cell lookups below.
	type cell struct {
		court uint64
		hour  int
	}
	occupied := make(map[cell]model.Booking, len(bookings))
	for _, b := range bookings {
		occupied[cell{b.CourtID, b.Hour}] = b
	}

	rows := make(map[int][]Slot, len(axis))
	for _, h := range axis {
		slots := make([]Slot, 0, len(active))
		for _, c := range active {
			s := Slot{Court: c, Hour: h, Available: true}
			if b, ok := occupied[cell{c.ID, h}]; ok {
				bb := b
				s.Available = false
				s.Booking = &bb
			}
			slots = append(slots, s)
		}
		rows[h] = slots
	}
	return Grid{Hours: axis, Rows: rows}
}
