package repository

import (
	"context"

	"github.com/osse101/UrbanPark_Go/internal/domain"
)

// Ledger defines persistence for spots and bookings.
// Lookups that find nothing return domain.ErrNotFound.
type Ledger interface {
	GetSpot(ctx context.Context, spotID string) (*domain.Spot, error)
	ListActiveSpots(ctx context.Context) ([]domain.Spot, error)
	ListBookingsForPrincipal(ctx context.Context, principalID string) ([]domain.Booking, error)
	// GetBookingOwnedBy returns the booking only if principalID owns it
	GetBookingOwnedBy(ctx context.Context, bookingID, principalID string) (*domain.Booking, error)

	CreateSpot(ctx context.Context, spot *domain.Spot) error
	UpdateSpotDetails(ctx context.Context, spotID string, details domain.SpotDetails) (*domain.Spot, error)
	// UpdateCapacity keeps outstanding bookings intact and fails with
	// domain.ErrInvalidInput when newCapacity is below them.
	UpdateCapacity(ctx context.Context, spotID string, newCapacity int) (*domain.Spot, error)
	SetStatus(ctx context.Context, spotID string, status domain.SpotStatus) (*domain.Spot, error)

	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx groups the availability and booking statements that must commit together
type LedgerTx interface {
	Tx
	// ConditionalDecrementAvailability decrements only when the spot is active and
	// holds at least expectedMinimum units, returning the new available count.
	// Fails with domain.ErrNotFound or domain.ErrCapacityExhausted otherwise.
	ConditionalDecrementAvailability(ctx context.Context, spotID string, expectedMinimum int) (int, error)
	// IncrementAvailability adds one unit, clamped to the spot's total capacity
	IncrementAvailability(ctx context.Context, spotID string) (int, error)
	InsertBooking(ctx context.Context, booking *domain.Booking) error
	// DeleteBookingOwnedBy removes the booking only if principalID owns it
	DeleteBookingOwnedBy(ctx context.Context, bookingID, principalID string) (*domain.Booking, error)
}
