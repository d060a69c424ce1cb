package model

import (
	"sort"
	"time"
)

// Boroughs lists the five NYC boroughs a club can belong to, in the
// canonical presentation order used by every club listing.  The order is
// part of the product behavior, not an implementation detail: clubs are
// always grouped Manhattan first and Staten Island last.
var Boroughs = []string{"Manhattan", "Brooklyn", "Queens", "Bronx", "Staten Island"}

// Club represents a tennis club venue as stored in the `clubs` table.
// Each club owns a set of courts and carries a single shared admin
// credential (bcrypt hash) used by its club admins to sign in.
//
// Fields:
//
//	ID           – primary key identifier.
//	Name         – human-friendly club name.
//	Borough      – one of the Boroughs values.
//	AdminHash    – bcrypt hash of the shared club admin password.
//	CreatedAt    – creation timestamp.
//	UpdatedAt    – last update timestamp.
type Club struct {
	ID        uint64    // clubs.id
	Name      string    // clubs.name
	Borough   string    // clubs.borough
	AdminHash string    // clubs.admin_password_hash
	CreatedAt time.Time // clubs.created_at
	UpdatedAt time.Time // clubs.updated_at
}

// ValidBorough reports whether b is one of the allowed borough names.
func ValidBorough(b string) bool {
	for _, v := range Boroughs {
		if v == b {
			return true
		}
	}
	return false
}

func boroughIndex(b string) int {
	for i, v := range Boroughs {
		if v == b {
			return i
		}
	}
	return len(Boroughs)
}

// SortClubs orders clubs by borough (canonical order) and then by name.
// The sort is performed in place.
func SortClubs(clubs []*Club) {
	sort.SliceStable(clubs, func(i, j int) bool {
		bi, bj := boroughIndex(clubs[i].Borough), boroughIndex(clubs[j].Borough)
		if bi != bj {
			return bi < bj
		}
		return clubs[i].Name < clubs[j].Name
	})
}
