package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/UrbanPark_Go/internal/concurrency"
	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/repository"
)

// Service defines the booking and spot administration operations
type Service interface {
	Book(ctx context.Context, principal domain.Principal, spotID string) (string, error)
	Cancel(ctx context.Context, principal domain.Principal, bookingID string) error
	ListBookings(ctx context.Context, principal domain.Principal) ([]domain.Booking, error)

	CurrentSnapshot(ctx context.Context) (*domain.Snapshot, error)
	GetSpot(ctx context.Context, principal domain.Principal, spotID string) (*domain.Spot, error)

	CreateSpot(ctx context.Context, principal domain.Principal, params domain.NewSpotParams) (*domain.Spot, error)
	UpdateSpot(ctx context.Context, principal domain.Principal, spotID string, details domain.SpotDetails) (*domain.Spot, error)
	UpdateCapacity(ctx context.Context, principal domain.Principal, spotID string, newCapacity int) (*domain.Spot, error)
	Deactivate(ctx context.Context, principal domain.Principal, spotID string) (*domain.Spot, error)
	Reactivate(ctx context.Context, principal domain.Principal, spotID string) (*domain.Spot, error)
}

// Publisher is told about every successful mutation. Implementations must not block.
type Publisher interface {
	PublishAfterMutation(ctx context.Context, cause string)
}

type service struct {
	ledger       repository.Ledger
	locks        *concurrency.LockManager
	publisher    Publisher
	storeTimeout time.Duration
	now          func() time.Time
	newID        func() string
}

// NewService creates a new inventory service
func NewService(ledger repository.Ledger, locks *concurrency.LockManager, publisher Publisher, storeTimeout time.Duration) Service {
	if storeTimeout <= 0 {
		storeTimeout = DefaultStoreTimeout
	}
	return &service{
		ledger:       ledger,
		locks:        locks,
		publisher:    publisher,
		storeTimeout: storeTimeout,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// storeContext bounds a store call. The caller's cancellation is detached so a
// client hanging up cannot abandon a mutation halfway; logger values are kept.
func (s *service) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), s.storeTimeout)
}

// classifyStoreError passes domain errors through and wraps everything else as a store failure
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		domain.ErrNotFound,
		domain.ErrCapacityExhausted,
		domain.ErrInvalidInput,
		domain.ErrForbidden,
		domain.ErrStoreFailure,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", domain.ErrStoreFailure, err)
}

func requireAdmin(principal domain.Principal) error {
	if !principal.IsAdmin {
		return fmt.Errorf("%w: %s", domain.ErrForbidden, ErrMsgAdminRequired)
	}
	return nil
}

func requirePrincipal(principal domain.Principal) error {
	if principal.ID == "" {
		return domain.ErrUnauthenticated
	}
	return nil
}

func (s *service) publish(ctx context.Context, cause string) {
	if s.publisher != nil {
		s.publisher.PublishAfterMutation(ctx, cause)
	}
}
