package inventory

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/UrbanPark_Go/internal/domain"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) Book(ctx context.Context, principal domain.Principal, spotID string) (string, error) {
	args := m.Called(ctx, principal, spotID)
	return args.String(0), args.Error(1)
}

func (m *MockService) Cancel(ctx context.Context, principal domain.Principal, bookingID string) error {
	args := m.Called(ctx, principal, bookingID)
	return args.Error(0)
}

func (m *MockService) ListBookings(ctx context.Context, principal domain.Principal) ([]domain.Booking, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockService) CurrentSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockService) GetSpot(ctx context.Context, principal domain.Principal, spotID string) (*domain.Spot, error) {
	args := m.Called(ctx, principal, spotID)
	return spotResult(args)
}

func (m *MockService) CreateSpot(ctx context.Context, principal domain.Principal, params domain.NewSpotParams) (*domain.Spot, error) {
	args := m.Called(ctx, principal, params)
	return spotResult(args)
}

func (m *MockService) UpdateSpot(ctx context.Context, principal domain.Principal, spotID string, details domain.SpotDetails) (*domain.Spot, error) {
	args := m.Called(ctx, principal, spotID, details)
	return spotResult(args)
}

func (m *MockService) UpdateCapacity(ctx context.Context, principal domain.Principal, spotID string, newCapacity int) (*domain.Spot, error) {
	args := m.Called(ctx, principal, spotID, newCapacity)
	return spotResult(args)
}

func (m *MockService) Deactivate(ctx context.Context, principal domain.Principal, spotID string) (*domain.Spot, error) {
	args := m.Called(ctx, principal, spotID)
	return spotResult(args)
}

func (m *MockService) Reactivate(ctx context.Context, principal domain.Principal, spotID string) (*domain.Spot, error) {
	args := m.Called(ctx, principal, spotID)
	return spotResult(args)
}

func spotResult(args mock.Arguments) (*domain.Spot, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Spot), args.Error(1)
}
