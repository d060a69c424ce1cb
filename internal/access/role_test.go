package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromClaims(t *testing.T) {
	r, err := FromClaims(ClaimClubAdmin, 42)
	require.NoError(t, err)
	assert.Equal(t, ClubAdmin{ClubID: 42}, r)

	r, err = FromClaims(ClaimSystemAdmin, 0)
	require.NoError(t, err)
	assert.Equal(t, SystemAdmin{}, r)

	_, err = FromClaims("", 0)
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = FromClaims("OWNER", 0)
	assert.ErrorIs(t, err, ErrUnknownRole)

	// a club admin claim without a club is unresolvable
	_, err = FromClaims(ClaimClubAdmin, 0)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestScopesAreDisjoint(t *testing.T) {
	player := Player{}
	clubAdmin := ClubAdmin{ClubID: 7}
	sysAdmin := SystemAdmin{}

	// booking lifecycle: only the matching club admin
	assert.True(t, CanManageBookings(clubAdmin, 7))
	assert.False(t, CanManageBookings(clubAdmin, 8))
	assert.False(t, CanManageBookings(player, 7))
	assert.False(t, CanManageBookings(sysAdmin, 7))

	// system administration: only the system admin, which in turn has no
	// booking capability anywhere
	assert.True(t, CanAdministerSystem(sysAdmin))
	assert.False(t, CanAdministerSystem(clubAdmin))
	assert.False(t, CanAdministerSystem(player))
}
