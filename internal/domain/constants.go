package domain

// Spot input limits
const (
	MaxSpotNameLength = 120
	MaxSpotCapacity   = 100000

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Mutation causes attached to published snapshots
const (
	CauseBooked      = "booked"
	CauseCancelled   = "cancelled"
	CauseCreated     = "spot_created"
	CauseUpdated     = "spot_updated"
	CauseCapacity    = "capacity_updated"
	CauseDeactivated = "spot_deactivated"
	CauseActivated   = "spot_activated"
	CauseRemote      = "remote"
)
