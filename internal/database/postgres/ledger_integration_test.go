package postgres

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/UrbanPark_Go/internal/domain"
)

func seedSpot(t *testing.T, repo *LedgerRepository, name string, capacity int) *domain.Spot {
	t.Helper()
	spot := &domain.Spot{
		ID:             uuid.NewString(),
		Name:           name,
		Latitude:       52.37,
		Longitude:      4.89,
		TotalCapacity:  capacity,
		AvailableCount: capacity,
		Status:         domain.SpotStatusActive,
	}
	require.NoError(t, repo.CreateSpot(context.Background(), spot))
	return spot
}

// book runs a decrement and insert in one transaction, the way the engine does
func book(ctx context.Context, repo *LedgerRepository, spotID, principal string) (*domain.Booking, error) {
	tx, err := repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.ConditionalDecrementAvailability(ctx, spotID, 1); err != nil {
		return nil, err
	}
	b := &domain.Booking{ID: uuid.NewString(), SpotID: spotID, PrincipalID: principal}
	if err := tx.InsertBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, tx.Commit(ctx)
}

func TestLedgerRepository_Spots(t *testing.T) {
	pool := requireDB(t)
	repo := NewLedgerRepository(pool)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		spot := seedSpot(t, repo, "Create Get", 4)

		got, err := repo.GetSpot(ctx, spot.ID)
		require.NoError(t, err)
		assert.Equal(t, spot.ID, got.ID)
		assert.Equal(t, 4, got.TotalCapacity)
		assert.Equal(t, 4, got.AvailableCount)
		assert.Equal(t, domain.SpotStatusActive, got.Status)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("missing and malformed ids are not found", func(t *testing.T) {
		_, err := repo.GetSpot(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = repo.GetSpot(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate id is invalid input", func(t *testing.T) {
		spot := seedSpot(t, repo, "Duplicate", 1)
		dup := *spot
		err := repo.CreateSpot(ctx, &dup)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("list active excludes inactive and is ordered", func(t *testing.T) {
		b := seedSpot(t, repo, "zz-order-b", 1)
		a := seedSpot(t, repo, "zz-order-a", 1)
		hidden := seedSpot(t, repo, "zz-order-c", 1)
		_, err := repo.SetStatus(ctx, hidden.ID, domain.SpotStatusInactive)
		require.NoError(t, err)

		spots, err := repo.ListActiveSpots(ctx)
		require.NoError(t, err)

		idx := map[string]int{}
		for i, s := range spots {
			idx[s.ID] = i
		}
		assert.Less(t, idx[a.ID], idx[b.ID], "spots should be ordered by name")
		_, present := idx[hidden.ID]
		assert.False(t, present, "inactive spot must not be listed")
	})

	t.Run("update details", func(t *testing.T) {
		spot := seedSpot(t, repo, "Old Name", 2)
		got, err := repo.UpdateSpotDetails(ctx, spot.ID, domain.SpotDetails{Name: "New Name", Latitude: 1, Longitude: 2})
		require.NoError(t, err)
		assert.Equal(t, "New Name", got.Name)
		assert.Equal(t, 2, got.AvailableCount)
	})
}

func TestLedgerRepository_Capacity(t *testing.T) {
	pool := requireDB(t)
	repo := NewLedgerRepository(pool)
	ctx := context.Background()

	spot := seedSpot(t, repo, "Capacity", 3)
	_, err := book(ctx, repo, spot.ID, "u1")
	require.NoError(t, err)
	_, err = book(ctx, repo, spot.ID, "u2")
	require.NoError(t, err)

	t.Run("below outstanding is rejected", func(t *testing.T) {
		_, err := repo.UpdateCapacity(ctx, spot.ID, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		got, err := repo.GetSpot(ctx, spot.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.TotalCapacity, "rejected update must not change the row")
		assert.Equal(t, 1, got.AvailableCount)
	})

	t.Run("grow keeps outstanding", func(t *testing.T) {
		got, err := repo.UpdateCapacity(ctx, spot.ID, 10)
		require.NoError(t, err)
		assert.Equal(t, 10, got.TotalCapacity)
		assert.Equal(t, 8, got.AvailableCount)
	})

	t.Run("shrink to outstanding", func(t *testing.T) {
		got, err := repo.UpdateCapacity(ctx, spot.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, got.AvailableCount)
	})
}

func TestLedgerTx_BookAndCancel(t *testing.T) {
	pool := requireDB(t)
	repo := NewLedgerRepository(pool)
	ctx := context.Background()

	t.Run("last unit then exhausted", func(t *testing.T) {
		spot := seedSpot(t, repo, "Last Unit", 1)

		_, err := book(ctx, repo, spot.ID, "alice")
		require.NoError(t, err)

		_, err = book(ctx, repo, spot.ID, "bob")
		assert.ErrorIs(t, err, domain.ErrCapacityExhausted)

		got, err := repo.GetSpot(ctx, spot.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.AvailableCount)
	})

	t.Run("inactive spot is not found", func(t *testing.T) {
		spot := seedSpot(t, repo, "Inactive", 2)
		_, err := repo.SetStatus(ctx, spot.ID, domain.SpotStatusInactive)
		require.NoError(t, err)

		_, err = book(ctx, repo, spot.ID, "alice")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rollback leaves no trace", func(t *testing.T) {
		spot := seedSpot(t, repo, "Rollback", 2)

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		_, err = tx.ConditionalDecrementAvailability(ctx, spot.ID, 1)
		require.NoError(t, err)
		require.NoError(t, tx.Rollback(ctx))

		got, err := repo.GetSpot(ctx, spot.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.AvailableCount)
	})

	t.Run("cancel by owner returns the unit once", func(t *testing.T) {
		spot := seedSpot(t, repo, "Cancel", 1)
		b, err := book(ctx, repo, spot.ID, "alice")
		require.NoError(t, err)

		cancel := func(principal string) error {
			tx, err := repo.BeginTx(ctx)
			require.NoError(t, err)
			defer func() { _ = tx.Rollback(ctx) }()
			deleted, err := tx.DeleteBookingOwnedBy(ctx, b.ID, principal)
			if err != nil {
				return err
			}
			if _, err := tx.IncrementAvailability(ctx, deleted.SpotID); err != nil {
				return err
			}
			return tx.Commit(ctx)
		}

		assert.ErrorIs(t, cancel("mallory"), domain.ErrNotFound, "foreign booking must look missing")
		require.NoError(t, cancel("alice"))
		assert.ErrorIs(t, cancel("alice"), domain.ErrNotFound, "second cancel must fail")

		got, err := repo.GetSpot(ctx, spot.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.AvailableCount)
	})

	t.Run("booking lookup is scoped to the owner", func(t *testing.T) {
		spot := seedSpot(t, repo, "Lookup", 2)
		b, err := book(ctx, repo, spot.ID, "alice")
		require.NoError(t, err)

		got, err := repo.GetBookingOwnedBy(ctx, b.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
		assert.Equal(t, spot.ID, got.SpotID)
		assert.Equal(t, "Lookup", got.SpotName)

		_, err = repo.GetBookingOwnedBy(ctx, b.ID, "mallory")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = repo.GetBookingOwnedBy(ctx, "not-a-uuid", "alice")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("increment clamps at total capacity", func(t *testing.T) {
		spot := seedSpot(t, repo, "Clamp", 1)

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		n, err := tx.IncrementAvailability(ctx, spot.ID)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))
		assert.Equal(t, 1, n)
	})

	t.Run("bookings listed newest first with spot name", func(t *testing.T) {
		spot := seedSpot(t, repo, "Listing", 3)
		principal := "lister-" + uuid.NewString()
		first, err := book(ctx, repo, spot.ID, principal)
		require.NoError(t, err)
		second, err := book(ctx, repo, spot.ID, principal)
		require.NoError(t, err)

		bookings, err := repo.ListBookingsForPrincipal(ctx, principal)
		require.NoError(t, err)
		require.Len(t, bookings, 2)
		assert.Equal(t, second.ID, bookings[0].ID)
		assert.Equal(t, first.ID, bookings[1].ID)
		assert.Equal(t, "Listing", bookings[0].SpotName)
	})
}

// TestLedgerTx_ConcurrentBookings verifies that N concurrent bookings against k units
// produce exactly k successes and never drive availability negative.
func TestLedgerTx_ConcurrentBookings(t *testing.T) {
	pool := requireDB(t)
	repo := NewLedgerRepository(pool)
	ctx := context.Background()

	const (
		units    = 5
		requests = 20
	)
	spot := seedSpot(t, repo, "Concurrent", units)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		exhausted atomic.Int32
		other     atomic.Int32
	)
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := book(ctx, repo, spot.ID, uuid.NewString())
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrCapacityExhausted):
				exhausted.Add(1)
			default:
				other.Add(1)
				t.Logf("unexpected error from booking %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(units), succeeded.Load())
	assert.Equal(t, int32(requests-units), exhausted.Load())
	assert.Zero(t, other.Load())

	got, err := repo.GetSpot(ctx, spot.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.AvailableCount)

	var count int
	err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE spot_id = $1`, uuid.MustParse(spot.ID)).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, units, count, "each booking must correspond to one decremented unit")
}
