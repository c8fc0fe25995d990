package domain

import "time"

// Booking is a claim on exactly one capacity unit of a spot
type Booking struct {
	ID          string    `json:"id"`
	SpotID      string    `json:"spot_id"`
	SpotName    string    `json:"spot_name,omitempty"`
	PrincipalID string    `json:"principal_id"`
	CreatedAt   time.Time `json:"created_at"`
}
