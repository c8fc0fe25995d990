package inventory

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/repository"
)

// MockLedger implements repository.Ledger for testing
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) GetSpot(ctx context.Context, spotID string) (*domain.Spot, error) {
	args := m.Called(ctx, spotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Spot), args.Error(1)
}

func (m *MockLedger) ListActiveSpots(ctx context.Context) ([]domain.Spot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Spot), args.Error(1)
}

func (m *MockLedger) ListBookingsForPrincipal(ctx context.Context, principalID string) ([]domain.Booking, error) {
	args := m.Called(ctx, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockLedger) GetBookingOwnedBy(ctx context.Context, bookingID, principalID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockLedger) CreateSpot(ctx context.Context, spot *domain.Spot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}

func (m *MockLedger) UpdateSpotDetails(ctx context.Context, spotID string, details domain.SpotDetails) (*domain.Spot, error) {
	args := m.Called(ctx, spotID, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Spot), args.Error(1)
}

func (m *MockLedger) UpdateCapacity(ctx context.Context, spotID string, newCapacity int) (*domain.Spot, error) {
	args := m.Called(ctx, spotID, newCapacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Spot), args.Error(1)
}

func (m *MockLedger) SetStatus(ctx context.Context, spotID string, status domain.SpotStatus) (*domain.Spot, error) {
	args := m.Called(ctx, spotID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Spot), args.Error(1)
}

func (m *MockLedger) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

// recordingPublisher captures publication causes
type recordingPublisher struct {
	mu     sync.Mutex
	causes []string
}

func (p *recordingPublisher) PublishAfterMutation(_ context.Context, cause string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.causes = append(p.causes, cause)
}

func (p *recordingPublisher) Causes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.causes...)
}
