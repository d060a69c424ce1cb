package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKey(t *testing.T) {
	dup := errors.New("Error 1062 (23000): Duplicate entry '3-2025-07-14-10' for key 'bookings.uniq_slot'")
	assert.True(t, isDuplicateKey(dup))

	assert.False(t, isDuplicateKey(errors.New("Error 1452 (23000): Cannot add or update a child row")))
	assert.False(t, isDuplicateKey(nil))
}
