package domain

import "time"

// SpotStatus is the lifecycle state of a parking spot
type SpotStatus string

const (
	SpotStatusActive   SpotStatus = "active"
	SpotStatusInactive SpotStatus = "inactive"
)

// Valid reports whether s is a known status
func (s SpotStatus) Valid() bool {
	return s == SpotStatusActive || s == SpotStatusInactive
}

// Spot is a parking location with a bounded pool of interchangeable units.
// AvailableCount always satisfies 0 <= AvailableCount <= TotalCapacity.
type Spot struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	TotalCapacity  int        `json:"total_capacity"`
	AvailableCount int        `json:"available_count"`
	Status         SpotStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsActive reports whether the spot accepts bookings
func (s *Spot) IsActive() bool {
	return s.Status == SpotStatusActive
}

// Outstanding returns the number of units currently held by bookings
func (s *Spot) Outstanding() int {
	return s.TotalCapacity - s.AvailableCount
}

// NewSpotParams carries the administrative input for creating a spot
type NewSpotParams struct {
	Name          string
	Latitude      float64
	Longitude     float64
	TotalCapacity int
}

// SpotDetails carries the display fields an administrator may change
type SpotDetails struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Snapshot is the set of active spots as observed by one store read
type Snapshot struct {
	Sequence uint64    `json:"sequence"`
	Cause    string    `json:"cause,omitempty"`
	ReadAt   time.Time `json:"read_at"`
	Spots    []Spot    `json:"spots"`
}
