package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBookingInput(t *testing.T) {
	assert.NoError(t, ValidateBookingInput("Alice", "M123"))

	assert.ErrorIs(t, ValidateBookingInput("", "M123"), ErrValidation)
	assert.ErrorIs(t, ValidateBookingInput("Alice", ""), ErrValidation)
	assert.ErrorIs(t, ValidateBookingInput("", ""), ErrValidation)
	assert.ErrorIs(t, ValidateBookingInput("   ", "M123"), ErrValidation)
}

func TestValidSurface(t *testing.T) {
	assert.True(t, ValidSurface("Hard"))
	assert.True(t, ValidSurface("Clay"))
	assert.True(t, ValidSurface("Grass"))
	assert.False(t, ValidSurface("Carpet"))
	assert.False(t, ValidSurface(""))
}
