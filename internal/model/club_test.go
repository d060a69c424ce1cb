package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidBorough(t *testing.T) {
	for _, b := range Boroughs {
		assert.True(t, ValidBorough(b), b)
	}
	assert.False(t, ValidBorough("Jersey City"))
	assert.False(t, ValidBorough(""))
	assert.False(t, ValidBorough("manhattan")) // case sensitive, matches the enum column
}

func TestSortClubs(t *testing.T) {
	clubs := []*Club{
		{ID: 1, Name: "Astoria Park", Borough: "Queens"},
		{ID: 2, Name: "Central Park", Borough: "Manhattan"},
		{ID: 3, Name: "Riverside", Borough: "Manhattan"},
		{ID: 4, Name: "South Beach", Borough: "Staten Island"},
		{ID: 5, Name: "Prospect Park", Borough: "Brooklyn"},
	}
	SortClubs(clubs)

	got := make([]string, 0, len(clubs))
	for _, c := range clubs {
		got = append(got, c.Name)
	}
	assert.Equal(t, []string{"Central Park", "Riverside", "Prospect Park", "Astoria Park", "South Beach"}, got)
}

func TestSortClubsUnknownBoroughLast(t *testing.T) {
	clubs := []*Club{
		{ID: 1, Name: "Mystery", Borough: "Atlantis"},
		{ID: 2, Name: "Mullaly Park", Borough: "Bronx"},
	}
	SortClubs(clubs)
	assert.Equal(t, "Mullaly Park", clubs[0].Name)
}
