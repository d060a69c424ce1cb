package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/model"
)

const today = "2026-08-31"

func hoursFor(courtID uint64, start, end int) []model.OperatingHour {
	var out []model.OperatingHour
	for h := start; h < end; h++ {
		out = append(out, model.OperatingHour{CourtID: courtID, Hour: h})
	}
	return out
}

func TestBuildGridSingleCourtAllFree(t *testing.T) {
	courts := []model.Court{{ID: 1, ClubID: 10, Name: "Court 1", Surface: "Hard", Status: model.CourtActive}}
	grid := BuildGrid(courts, hoursFor(1, 8, 20), nil)

	require.Len(t, grid.Hours, 12)
	assert.Equal(t, 8, grid.Hours[0])
	assert.Equal(t, 19, grid.Hours[11])
	for _, h := range grid.Hours {
		row := grid.Rows[h]
		require.Len(t, row, 1)
		assert.True(t, row[0].Available)
		assert.Nil(t, row[0].Booking)
		assert.Equal(t, "Court 1", row[0].Court.Name)
	}
}

func TestBuildGridOccupiedCell(t *testing.T) {
	courts := []model.Court{{ID: 1, ClubID: 10, Name: "Court 1", Status: model.CourtActive}}
	bookings := []model.Booking{{
		ID: 77, CourtID: 1, PlayDate: today, Hour: 10,
		PlayerName: "Alice", MemberID: "M123", Status: model.BookingConfirmed,
	}}
	grid := BuildGrid(courts, hoursFor(1, 8, 20), bookings)

	row := grid.Rows[10]
	require.Len(t, row, 1)
	assert.False(t, row[0].Available)
	require.NotNil(t, row[0].Booking)
	assert.Equal(t, "Alice", row[0].Booking.PlayerName)
	assert.Equal(t, "M123", row[0].Booking.MemberID)

	// every other hour stays free
	for _, h := range grid.Hours {
		if h == 10 {
			continue
		}
		assert.True(t, grid.Rows[h][0].Available, "hour %d", h)
	}
}

func TestBuildGridExcludesInactiveCourts(t *testing.T) {
	courts := []model.Court{
		{ID: 1, ClubID: 10, Name: "Court 1", Status: model.CourtActive},
		{ID: 2, ClubID: 10, Name: "Court 2", Status: model.CourtInactive},
	}
	hours := append(hoursFor(1, 9, 12), hoursFor(2, 9, 12)...)
	bookings := []model.Booking{{ID: 5, CourtID: 2, PlayDate: today, Hour: 9, PlayerName: "Bob", MemberID: "M9"}}

	grid := BuildGrid(courts, hours, bookings)

	// the inactive court is absent, not shown as unavailable, and its
	// booking does not surface anywhere
	for _, h := range grid.Hours {
		require.Len(t, grid.Rows[h], 1)
		assert.Equal(t, uint64(1), grid.Rows[h][0].Court.ID)
		assert.True(t, grid.Rows[h][0].Available)
	}
}

func TestBuildGridInactiveHoursDropOffAxis(t *testing.T) {
	// Hours open only on an inactive court do not contribute rows.
	courts := []model.Court{
		{ID: 1, ClubID: 10, Name: "Court 1", Status: model.CourtActive},
		{ID: 2, ClubID: 10, Name: "Court 2", Status: model.CourtInactive},
	}
	hours := append(hoursFor(1, 9, 12), hoursFor(2, 6, 9)...)
	grid := BuildGrid(courts, hours, nil)
	assert.Equal(t, []int{9, 10, 11}, grid.Hours)
}

func TestBuildGridCourtAppearsInEveryHourRow(t *testing.T) {
	// Court 2 only operates 12-14, but it still appears in the 9-12 rows
	// contributed by Court 1: operating hours shape the axis, not the
	// per-hour court list.
	courts := []model.Court{
		{ID: 1, ClubID: 10, Name: "Court 1", Status: model.CourtActive},
		{ID: 2, ClubID: 10, Name: "Court 2", Status: model.CourtActive},
	}
	hours := append(hoursFor(1, 9, 12), hoursFor(2, 12, 14)...)
	grid := BuildGrid(courts, hours, nil)

	assert.Equal(t, []int{9, 10, 11, 12, 13}, grid.Hours)
	for _, h := range grid.Hours {
		assert.Len(t, grid.Rows[h], 2, "hour %d", h)
	}
}

func TestBuildGridEmptyInputs(t *testing.T) {
	grid := BuildGrid(nil, nil, nil)
	assert.Empty(t, grid.Hours)
	assert.Empty(t, grid.Rows)
}

func TestBuildGridCourtOrderStable(t *testing.T) {
	courts := []model.Court{
		{ID: 3, ClubID: 10, Name: "Court 3", Status: model.CourtActive},
		{ID: 1, ClubID: 10, Name: "Court 1", Status: model.CourtActive},
	}
	hours := append(hoursFor(3, 10, 11), hoursFor(1, 10, 11)...)
	grid := BuildGrid(courts, hours, nil)

	row := grid.Rows[10]
	require.Len(t, row, 2)
	// input order is preserved; repositories return courts ordered by id
	assert.Equal(t, uint64(3), row[0].Court.ID)
	assert.Equal(t, uint64(1), row[1].Court.ID)
}
