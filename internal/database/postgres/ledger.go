package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/UrbanPark_Go/internal/database/generated"
	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/repository"
)

// LedgerRepository implements repository.Ledger for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{
		db: db,
		q:  generated.New(db),
	}
}

// GetSpot returns the spot regardless of status
func (r *LedgerRepository) GetSpot(ctx context.Context, spotID string) (*domain.Spot, error) {
	id, err := parseID(spotID)
	if err != nil {
		return nil, err
	}

	row, err := r.q.GetSpot(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
		}
		return nil, storeErr(ErrMsgFailedToGetSpot, err)
	}
	return mapSpot(row), nil
}

// ListActiveSpots returns every active spot ordered by name, then id
func (r *LedgerRepository) ListActiveSpots(ctx context.Context) ([]domain.Spot, error) {
	rows, err := r.q.ListSpotsByStatus(ctx, string(domain.SpotStatusActive))
	if err != nil {
		return nil, storeErr(ErrMsgFailedToListSpots, err)
	}

	spots := make([]domain.Spot, 0, len(rows))
	for _, row := range rows {
		spots = append(spots, *mapSpot(row))
	}
	return spots, nil
}

// ListBookingsForPrincipal returns the principal's bookings, newest first
func (r *LedgerRepository) ListBookingsForPrincipal(ctx context.Context, principalID string) ([]domain.Booking, error) {
	rows, err := r.q.ListBookingsForPrincipal(ctx, principalID)
	if err != nil {
		return nil, storeErr(ErrMsgFailedToListBookings, err)
	}

	bookings := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, domain.Booking{
			ID:          row.BookingID.String(),
			SpotID:      row.SpotID.String(),
			SpotName:    row.Name,
			PrincipalID: row.PrincipalID,
			CreatedAt:   row.CreatedAt.Time,
		})
	}
	return bookings, nil
}

// GetBookingOwnedBy returns the booking if principalID owns it. A booking owned
// by someone else is indistinguishable from a missing one.
func (r *LedgerRepository) GetBookingOwnedBy(ctx context.Context, bookingID, principalID string) (*domain.Booking, error) {
	id, err := parseID(bookingID)
	if err != nil {
		return nil, err
	}

	row, err := r.q.GetBookingOwnedBy(ctx, generated.GetBookingOwnedByParams{
		BookingID:   id,
		PrincipalID: principalID,
	})
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, bookingID)
		}
		return nil, storeErr(ErrMsgFailedToGetBooking, err)
	}
	return &domain.Booking{
		ID:          row.BookingID.String(),
		SpotID:      row.SpotID.String(),
		SpotName:    row.Name,
		PrincipalID: row.PrincipalID,
		CreatedAt:   row.CreatedAt.Time,
	}, nil
}

// CreateSpot inserts a new spot. The caller assigns the id and the initial counts.
func (r *LedgerRepository) CreateSpot(ctx context.Context, spot *domain.Spot) error {
	id, err := uuid.Parse(spot.ID)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidID)
	}

	row, err := r.q.CreateSpot(ctx, generated.CreateSpotParams{
		SpotID:         id,
		Name:           spot.Name,
		Latitude:       spot.Latitude,
		Longitude:      spot.Longitude,
		TotalCapacity:  int32(spot.TotalCapacity),
		AvailableCount: int32(spot.AvailableCount),
		Status:         string(spot.Status),
	})
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgSpotIDConflict)
		case isCheckViolation(err):
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgSpotConstraintViolated)
		}
		return storeErr(ErrMsgFailedToInsertSpot, err)
	}
	spot.CreatedAt = row.CreatedAt.Time
	spot.UpdatedAt = row.UpdatedAt.Time
	return nil
}

// UpdateSpotDetails changes the display fields of a spot
func (r *LedgerRepository) UpdateSpotDetails(ctx context.Context, spotID string, details domain.SpotDetails) (*domain.Spot, error) {
	id, err := parseID(spotID)
	if err != nil {
		return nil, err
	}

	row, err := r.q.UpdateSpotDetails(ctx, generated.UpdateSpotDetailsParams{
		SpotID:    id,
		Name:      details.Name,
		Latitude:  details.Latitude,
		Longitude: details.Longitude,
	})
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
		}
		if isCheckViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgSpotConstraintViolated)
		}
		return nil, storeErr(ErrMsgFailedToUpdateSpot, err)
	}
	return mapSpot(row), nil
}

// UpdateCapacity resizes a spot while preserving its outstanding bookings.
// The row is locked so concurrent books and cancels cannot move the count between read and write.
func (r *LedgerRepository) UpdateCapacity(ctx context.Context, spotID string, newCapacity int) (*domain.Spot, error) {
	id, err := parseID(spotID)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, storeErr(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	current, err := lockSpot(ctx, tx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
		}
		return nil, storeErr(ErrMsgFailedToGetSpot, err)
	}

	newAvailable := newCapacity - current.Outstanding()
	if newAvailable < 0 {
		return nil, fmt.Errorf("%w: %s (outstanding %d, requested %d)",
			domain.ErrInvalidInput, ErrMsgCapacityBelowOutstanding, current.Outstanding(), newCapacity)
	}

	row, err := r.q.WithTx(tx).UpdateSpotCapacity(ctx, generated.UpdateSpotCapacityParams{
		SpotID:         id,
		TotalCapacity:  int32(newCapacity),
		AvailableCount: int32(newAvailable),
	})
	if err != nil {
		return nil, storeErr(ErrMsgFailedToUpdateCapacity, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storeErr(ErrMsgFailedToCommitTransaction, err)
	}
	return mapSpot(row), nil
}

// SetStatus changes the lifecycle status. Setting the current status again is not an error.
func (r *LedgerRepository) SetStatus(ctx context.Context, spotID string, status domain.SpotStatus) (*domain.Spot, error) {
	id, err := parseID(spotID)
	if err != nil {
		return nil, err
	}

	row, err := r.q.SetSpotStatus(ctx, generated.SetSpotStatusParams{
		SpotID: id,
		Status: string(status),
	})
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
		}
		return nil, storeErr(ErrMsgFailedToSetStatus, err)
	}
	return mapSpot(row), nil
}

// BeginTx starts a ledger transaction for booking and cancellation
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, storeErr(ErrMsgFailedToBeginTransaction, err)
	}
	return &ledgerTx{
		tx: tx,
		q:  r.q.WithTx(tx),
	}, nil
}

// ledgerTx implements repository.LedgerTx on a pgx transaction
type ledgerTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return storeErr(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// ConditionalDecrementAvailability takes one unit only if the spot is active and
// still holds at least expectedMinimum units. The check and the write are one statement.
func (t *ledgerTx) ConditionalDecrementAvailability(ctx context.Context, spotID string, expectedMinimum int) (int, error) {
	id, err := parseID(spotID)
	if err != nil {
		return 0, err
	}

	available, err := t.q.DecrementAvailability(ctx, generated.DecrementAvailabilityParams{
		SpotID:          id,
		Status:          string(domain.SpotStatusActive),
		ExpectedMinimum: int32(expectedMinimum),
	})
	if err == nil {
		return int(available), nil
	}
	if !isNoRows(err) {
		return 0, storeErr(ErrMsgFailedToDecrement, err)
	}

	// Nothing matched: tell a missing or inactive spot apart from an exhausted one
	status, err := t.q.GetSpotStatus(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return 0, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
		}
		return 0, storeErr(ErrMsgFailedToDecrement, err)
	}
	if domain.SpotStatus(status) != domain.SpotStatusActive {
		return 0, fmt.Errorf("%w: spot %s is %s", domain.ErrNotFound, spotID, status)
	}
	return 0, fmt.Errorf("%w: spot %s", domain.ErrCapacityExhausted, spotID)
}

// IncrementAvailability returns one unit, never exceeding total capacity
func (t *ledgerTx) IncrementAvailability(ctx context.Context, spotID string) (int, error) {
	id, err := parseID(spotID)
	if err != nil {
		return 0, err
	}

	available, err := t.q.IncrementAvailability(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return 0, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
		}
		return 0, storeErr(ErrMsgFailedToIncrement, err)
	}
	return int(available), nil
}

// InsertBooking records a booking. The caller assigns the id.
func (t *ledgerTx) InsertBooking(ctx context.Context, booking *domain.Booking) error {
	bookingID, err := uuid.Parse(booking.ID)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidID)
	}
	spotID, err := parseID(booking.SpotID)
	if err != nil {
		return err
	}

	createdAt, err := t.q.InsertBooking(ctx, generated.InsertBookingParams{
		BookingID:   bookingID,
		SpotID:      spotID,
		PrincipalID: booking.PrincipalID,
	})
	if err != nil {
		return storeErr(ErrMsgFailedToInsertBooking, err)
	}
	booking.CreatedAt = createdAt.Time
	return nil
}

// DeleteBookingOwnedBy removes the booking if principalID owns it. A booking owned
// by someone else is indistinguishable from a missing one.
func (t *ledgerTx) DeleteBookingOwnedBy(ctx context.Context, bookingID, principalID string) (*domain.Booking, error) {
	id, err := parseID(bookingID)
	if err != nil {
		return nil, err
	}

	row, err := t.q.DeleteBookingOwnedBy(ctx, generated.DeleteBookingOwnedByParams{
		BookingID:   id,
		PrincipalID: principalID,
	})
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, bookingID)
		}
		return nil, storeErr(ErrMsgFailedToDeleteBooking, err)
	}
	return &domain.Booking{
		ID:          id.String(),
		SpotID:      row.SpotID.String(),
		PrincipalID: principalID,
		CreatedAt:   row.CreatedAt.Time,
	}, nil
}

var (
	_ repository.Ledger   = (*LedgerRepository)(nil)
	_ repository.LedgerTx = (*ledgerTx)(nil)
)
