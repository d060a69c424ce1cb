package repository

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingCols = []string{"id", "court_id", "play_date", "hour", "player_name", "member_id", "status"}

// With parseTime=true the driver hands DATE columns over as time.Time;
// the repository must still yield the date-only string form.
func TestListForClubDatePlayDateFormat(t *testing.T) {
	d := &stubDB{results: map[string]*stubRowSet{
		"FROM bookings b": {
			cols: bookingCols,
			rows: [][]driver.Value{
				{int64(7), int64(3), time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), int64(10), "Ana Ruiz", "M-104", "confirmed"},
			},
		},
	}}
	repo := NewBookingRepo(d.open())

	got, err := repo.ListForClubDate(context.Background(), 1, "2026-08-31")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-08-31", got[0].PlayDate)
	assert.Equal(t, uint64(3), got[0].CourtID)
	assert.Equal(t, 10, got[0].Hour)
}

func TestGetByIDForClubPlayDateFormat(t *testing.T) {
	d := &stubDB{results: map[string]*stubRowSet{
		"WHERE b.id = ?": {
			cols: bookingCols,
			rows: [][]driver.Value{
				{int64(7), int64(3), time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), int64(10), "Ana Ruiz", "M-104", "confirmed"},
			},
		},
	}}
	repo := NewBookingRepo(d.open())

	b, err := repo.GetByIDForClub(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", b.PlayDate)
}

func TestGetByIDForClubNotFound(t *testing.T) {
	repo := NewBookingRepo((&stubDB{}).open())

	_, err := repo.GetByIDForClub(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
