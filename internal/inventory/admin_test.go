package inventory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/UrbanPark_Go/internal/concurrency"
	"github.com/osse101/UrbanPark_Go/internal/domain"
)

func TestAdminOperations_RequireAdminBeforeStore(t *testing.T) {
	ctx := context.Background()
	ledger := &MockLedger{}
	pub := &recordingPublisher{}
	svc := NewService(ledger, concurrency.NewLockManager(), pub, time.Second)

	params := domain.NewSpotParams{Name: "Central", Latitude: 1, Longitude: 1, TotalCapacity: 3}
	details := domain.SpotDetails{Name: "Central", Latitude: 1, Longitude: 1}

	ops := map[string]func() error{
		"create":     func() error { _, err := svc.CreateSpot(ctx, alice, params); return err },
		"update":     func() error { _, err := svc.UpdateSpot(ctx, alice, spotCentral, details); return err },
		"capacity":   func() error { _, err := svc.UpdateCapacity(ctx, alice, spotCentral, 5); return err },
		"deactivate": func() error { _, err := svc.Deactivate(ctx, alice, spotCentral); return err },
		"reactivate": func() error { _, err := svc.Reactivate(ctx, alice, spotCentral); return err },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, op(), domain.ErrForbidden)
		})
	}

	// No expectations were set, so any store call would have panicked
	ledger.AssertExpectations(t)
	assert.Empty(t, pub.Causes())
}

func TestCreateSpot(t *testing.T) {
	ctx := context.Background()

	t.Run("Best Case: seeds availability from capacity", func(t *testing.T) {
		svc, ledger, pub := newTestService(t)

		spot, err := svc.CreateSpot(ctx, admin, domain.NewSpotParams{
			Name: "  Central  ", Latitude: 52.37, Longitude: 4.89, TotalCapacity: 12,
		})

		require.NoError(t, err)
		assert.Equal(t, "Central", spot.Name)
		assert.Equal(t, 12, spot.AvailableCount)
		assert.Equal(t, domain.SpotStatusActive, spot.Status)
		assert.NotNil(t, ledger.Spot(spot.ID))
		assert.Equal(t, []string{domain.CauseCreated}, pub.Causes())
	})

	t.Run("name is NFC normalised", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		spot, err := svc.CreateSpot(ctx, admin, domain.NewSpotParams{Name: "Cafe\u0301", TotalCapacity: 1})

		require.NoError(t, err)
		assert.Equal(t, "Caf\u00e9", spot.Name)
	})

	invalid := map[string]domain.NewSpotParams{
		"empty name":         {Name: "   ", TotalCapacity: 1},
		"long name":          {Name: strings.Repeat("x", domain.MaxSpotNameLength+1), TotalCapacity: 1},
		"control characters": {Name: "bad\nname", TotalCapacity: 1},
		"latitude":           {Name: "n", Latitude: 91, TotalCapacity: 1},
		"longitude":          {Name: "n", Longitude: -181, TotalCapacity: 1},
		"negative capacity":  {Name: "n", TotalCapacity: -1},
		"huge capacity":      {Name: "n", TotalCapacity: domain.MaxSpotCapacity + 1},
	}
	for name, params := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			svc, _, pub := newTestService(t)
			_, err := svc.CreateSpot(ctx, admin, params)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, pub.Causes())
		})
	}

	t.Run("store error is wrapped", func(t *testing.T) {
		ledger := &MockLedger{}
		ledger.On("CreateSpot", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
		svc := NewService(ledger, concurrency.NewLockManager(), &recordingPublisher{}, time.Second)

		_, err := svc.CreateSpot(ctx, admin, domain.NewSpotParams{Name: "n", TotalCapacity: 1})

		assert.ErrorIs(t, err, domain.ErrStoreFailure)
		ledger.AssertExpectations(t)
	})
}

func TestUpdateCapacity(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*service, *FakeLedger, *recordingPublisher) {
		svc, ledger, pub := newTestService(t)
		seedSpot(ledger, spotCentral, "Central", 3)
		for i := 0; i < 2; i++ {
			_, err := svc.Book(ctx, alice, spotCentral)
			require.NoError(t, err)
		}
		return svc, ledger, pub
	}

	t.Run("grow keeps outstanding bookings", func(t *testing.T) {
		svc, _, pub := setup(t)
		spot, err := svc.UpdateCapacity(ctx, admin, spotCentral, 10)
		require.NoError(t, err)
		assert.Equal(t, 10, spot.TotalCapacity)
		assert.Equal(t, 8, spot.AvailableCount)
		assert.Contains(t, pub.Causes(), domain.CauseCapacity)
	})

	t.Run("shrink to exactly outstanding", func(t *testing.T) {
		svc, _, _ := setup(t)
		spot, err := svc.UpdateCapacity(ctx, admin, spotCentral, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, spot.AvailableCount)
	})

	t.Run("below outstanding is rejected", func(t *testing.T) {
		svc, ledger, _ := setup(t)
		_, err := svc.UpdateCapacity(ctx, admin, spotCentral, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, 3, ledger.Spot(spotCentral).TotalCapacity)
		assert.Equal(t, 1, ledger.Spot(spotCentral).AvailableCount)
	})

	t.Run("negative is rejected before the store", func(t *testing.T) {
		svc, _, _ := setup(t)
		_, err := svc.UpdateCapacity(ctx, admin, spotCentral, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing spot", func(t *testing.T) {
		svc, _, _ := setup(t)
		_, err := svc.UpdateCapacity(ctx, admin, spotUnknown, 4)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeactivateReactivate(t *testing.T) {
	ctx := context.Background()
	svc, ledger, pub := newTestService(t)
	seedSpot(ledger, spotCentral, "Central", 1)

	spot, err := svc.Deactivate(ctx, admin, spotCentral)
	require.NoError(t, err)
	assert.Equal(t, domain.SpotStatusInactive, spot.Status)

	_, err = svc.Deactivate(ctx, admin, spotCentral)
	require.NoError(t, err, "deactivation is idempotent")

	spot, err = svc.Reactivate(ctx, admin, spotCentral)
	require.NoError(t, err)
	assert.True(t, spot.IsActive())

	_, err = svc.Book(ctx, alice, spotCentral)
	require.NoError(t, err)

	assert.Equal(t, []string{
		domain.CauseDeactivated, domain.CauseDeactivated, domain.CauseActivated, domain.CauseBooked,
	}, pub.Causes())

	_, err = svc.Deactivate(ctx, admin, spotUnknown)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateSpot(t *testing.T) {
	ctx := context.Background()
	svc, ledger, pub := newTestService(t)
	seedSpot(ledger, spotCentral, "Central", 4)

	spot, err := svc.UpdateSpot(ctx, admin, spotCentral, domain.SpotDetails{Name: "Central North", Latitude: 10, Longitude: 20})

	require.NoError(t, err)
	assert.Equal(t, "Central North", spot.Name)
	assert.Equal(t, 4, spot.AvailableCount, "details update must not touch counts")
	assert.Equal(t, []string{domain.CauseUpdated}, pub.Causes())

	_, err = svc.UpdateSpot(ctx, admin, spotCentral, domain.SpotDetails{Name: "", Latitude: 0, Longitude: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetSpot(t *testing.T) {
	ctx := context.Background()
	svc, ledger, _ := newTestService(t)
	seedSpot(ledger, spotCentral, "Central", 1)
	_, err := svc.Deactivate(ctx, admin, spotCentral)
	require.NoError(t, err)

	spot, err := svc.GetSpot(ctx, admin, spotCentral)
	require.NoError(t, err)
	assert.Equal(t, domain.SpotStatusInactive, spot.Status)

	_, err = svc.GetSpot(ctx, alice, spotCentral)
	assert.ErrorIs(t, err, domain.ErrNotFound, "non-admins only see active spots")

	_, err = svc.GetSpot(ctx, admin, spotUnknown)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
