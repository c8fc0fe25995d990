package handler

import "github.com/osse101/UrbanPark_Go/internal/domain"

// BookRequest asks for one unit at a spot
type BookRequest struct {
	SpotID string `json:"spot_id" validate:"required,max=64"`
}

// BookResponse carries the new booking id
type BookResponse struct {
	BookingID string `json:"booking_id"`
}

// BookingsResponse lists the caller's bookings, newest first
type BookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
}

// CreateSpotRequest describes a new spot. Pointers distinguish zero from missing.
type CreateSpotRequest struct {
	Name          string   `json:"name" validate:"required,max=120,excludesall=\x00"`
	Latitude      *float64 `json:"latitude" validate:"required,latitude"`
	Longitude     *float64 `json:"longitude" validate:"required,longitude"`
	TotalCapacity *int     `json:"total_capacity" validate:"required,min=0,max=100000"`
}

// UpdateSpotRequest replaces a spot's display fields
type UpdateSpotRequest struct {
	Name      string   `json:"name" validate:"required,max=120,excludesall=\x00"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// UpdateCapacityRequest sets a spot's total capacity
type UpdateCapacityRequest struct {
	TotalCapacity *int `json:"total_capacity" validate:"required,min=0,max=100000"`
}

// SpotResponse wraps one spot
type SpotResponse struct {
	Spot *domain.Spot `json:"spot"`
}
