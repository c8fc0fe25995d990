package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpotStatus_Valid(t *testing.T) {
	assert.True(t, SpotStatusActive.Valid())
	assert.True(t, SpotStatusInactive.Valid())
	assert.False(t, SpotStatus("deleted").Valid())
	assert.False(t, SpotStatus("").Valid())
}

func TestSpot_Outstanding(t *testing.T) {
	s := Spot{TotalCapacity: 10, AvailableCount: 3, Status: SpotStatusActive}

	assert.Equal(t, 7, s.Outstanding())
	assert.True(t, s.IsActive())

	s.Status = SpotStatusInactive
	assert.False(t, s.IsActive())
}
