package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHourRange(t *testing.T) {
	require.NoError(t, ValidateHourRange(9, 17))
	require.NoError(t, ValidateHourRange(0, 23))
	require.NoError(t, ValidateHourRange(8, 9))

	assert.ErrorIs(t, ValidateHourRange(10, 10), ErrInvalidHourRange) // degenerate
	assert.ErrorIs(t, ValidateHourRange(12, 8), ErrInvalidHourRange)  // inverted
	assert.ErrorIs(t, ValidateHourRange(-1, 5), ErrInvalidHourRange)
	assert.ErrorIs(t, ValidateHourRange(5, 24), ErrInvalidHourRange)
}

func TestHoursInRange(t *testing.T) {
	got := HoursInRange(9, 17)
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15, 16}, got)
	assert.Len(t, got, 8)

	assert.Equal(t, []int{22}, HoursInRange(22, 23))
}
