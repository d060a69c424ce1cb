// Package access resolves an authenticated principal into one of three
// role variants and answers scope questions about them.  The variants
// are a closed sum: each carries its own visibility scope and the
// capability sets are disjoint, not a privilege ladder.
package access

import "errors"

// Role claim values carried in JWT access tokens.
const (
	ClaimClubAdmin   = "CLUB_ADMIN"
	ClaimSystemAdmin = "SYSTEM_ADMIN"
)

// ErrUnknownRole is returned when a claim does not resolve to any role
// variant.  Callers should treat the principal as unauthenticated and
// direct them to re-authenticate rather than reporting a server error.
var ErrUnknownRole = errors.New("unknown role")

// Role is the closed set of principal variants.  Only the three types in
// this package implement it.
type Role interface {
	isRole()
}

// Player is the anonymous read-only variant.  Players browse the
// availability of any single club at a time and cannot mutate anything.
type Player struct{}

// ClubAdmin manages the booking lifecycle of exactly one club,
// authenticated via the club's shared password.
type ClubAdmin struct {
	ClubID uint64
}

// SystemAdmin administers clubs, courts and operating hours across all
// clubs.  It does not directly manage bookings.
type SystemAdmin struct{}

func (Player) isRole()      {}
func (ClubAdmin) isRole()   {}
func (SystemAdmin) isRole() {}

// FromClaims maps the role claim (plus the club_id claim for club
// admins) to a Role variant.  An empty or unrecognized claim yields
// ErrUnknownRole.
func FromClaims(role string, clubID uint64) (Role, error) {
	switch role {
	case ClaimClubAdmin:
		if clubID == 0 {
			return nil, ErrUnknownRole
		}
		return ClubAdmin{ClubID: clubID}, nil
	case ClaimSystemAdmin:
		return SystemAdmin{}, nil
	}
	return nil, ErrUnknownRole
}

// CanManageBookings reports whether r may create, update or cancel
// bookings for the given club.  Only the club's own admin may.
func CanManageBookings(r Role, clubID uint64) bool {
	a, ok := r.(ClubAdmin)
	return ok && a.ClubID == clubID
}

// CanAdministerSystem reports whether r may mutate clubs, courts and
// operating hours.
func CanAdministerSystem(r Role) bool {
	_, ok := r.(SystemAdmin)
	return ok
}
