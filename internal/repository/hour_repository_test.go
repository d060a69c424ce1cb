package repository

import (
	"context"
	"database/sql/driver"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clubRow(id int64) *stubRowSet {
	return &stubRowSet{cols: []string{"id"}, rows: [][]driver.Value{{id}}}
}

func TestReplaceForClubNoCourtsIsNoOp(t *testing.T) {
	d := &stubDB{results: map[string]*stubRowSet{
		"FROM clubs": clubRow(4),
	}}
	repo := NewHourRepo(d.open())

	err := repo.ReplaceForClub(context.Background(), 4, 9, 17)
	require.NoError(t, err)
	assert.Empty(t, d.execs)
}

func TestReplaceForClubUnknownClub(t *testing.T) {
	repo := NewHourRepo((&stubDB{}).open())

	err := repo.ReplaceForClub(context.Background(), 99, 9, 17)
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestReplaceForClubDeletesThenInserts(t *testing.T) {
	d := &stubDB{results: map[string]*stubRowSet{
		"FROM clubs": clubRow(4),
		"FROM courts": {
			cols: []string{"id"},
			rows: [][]driver.Value{{int64(1)}, {int64(2)}},
		},
	}}
	repo := NewHourRepo(d.open())

	err := repo.ReplaceForClub(context.Background(), 4, 9, 17)
	require.NoError(t, err)
	require.Len(t, d.execs, 2)
	assert.True(t, strings.Contains(d.execs[0], "DELETE h FROM court_hours"))
	assert.True(t, strings.Contains(d.execs[1], "INSERT INTO court_hours"))
}
