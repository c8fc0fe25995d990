package inventory

import (
	"context"

	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/logger"
	"github.com/osse101/UrbanPark_Go/internal/metrics"
	"github.com/osse101/UrbanPark_Go/internal/repository"
)

// Book claims one unit of the spot for the principal and returns the new booking id.
// The decrement and the booking insert commit together or not at all.
func (s *service) Book(ctx context.Context, principal domain.Principal, spotID string) (string, error) {
	log := logger.FromContext(ctx)

	if err := requirePrincipal(principal); err != nil {
		return "", err
	}
	spotID, err := canonicalID(spotID, "spot")
	if err != nil {
		return "", err
	}

	var bookingID string
	err = s.locks.WithLock(spotID, func() error {
		id, err := s.bookLocked(ctx, principal, spotID)
		bookingID = id
		return err
	})
	err = classifyStoreError(err)
	metrics.BookingsTotal.WithLabelValues(metrics.ResultLabel(err)).Inc()
	if err != nil {
		log.Warn(LogMsgBookingFailed, "spot_id", spotID, "principal", principal.ID, "error", err)
		return "", err
	}

	log.Info(LogMsgBookingCreated, "spot_id", spotID, "booking_id", bookingID, "principal", principal.ID)
	s.publish(ctx, domain.CauseBooked)
	return bookingID, nil
}

func (s *service) bookLocked(ctx context.Context, principal domain.Principal, spotID string) (string, error) {
	sctx, cancel := s.storeContext(ctx)
	defer cancel()

	tx, err := s.ledger.BeginTx(sctx)
	if err != nil {
		return "", err
	}
	defer repository.SafeRollback(sctx, tx)

	if _, err := tx.ConditionalDecrementAvailability(sctx, spotID, 1); err != nil {
		return "", err
	}

	booking := &domain.Booking{
		ID:          s.newID(),
		SpotID:      spotID,
		PrincipalID: principal.ID,
	}
	if err := tx.InsertBooking(sctx, booking); err != nil {
		return "", err
	}

	if err := tx.Commit(sctx); err != nil {
		return "", err
	}
	return booking.ID, nil
}

// Cancel removes the principal's booking and returns its unit to the spot.
// A booking held by someone else is reported as not found.
func (s *service) Cancel(ctx context.Context, principal domain.Principal, bookingID string) error {
	log := logger.FromContext(ctx)

	if err := requirePrincipal(principal); err != nil {
		return err
	}
	bookingID, err := canonicalID(bookingID, "booking")
	if err != nil {
		return err
	}

	spotID, err := s.cancel(ctx, principal, bookingID)
	err = classifyStoreError(err)
	metrics.CancellationsTotal.WithLabelValues(metrics.ResultLabel(err)).Inc()
	if err != nil {
		log.Warn(LogMsgCancelFailed, "booking_id", bookingID, "principal", principal.ID, "error", err)
		return err
	}

	log.Info(LogMsgBookingCancelled, "booking_id", bookingID, "spot_id", spotID, "principal", principal.ID)
	s.publish(ctx, domain.CauseCancelled)
	return nil
}

// cancel resolves the booking's spot first so the spot lock is taken before a
// transaction holds a pool connection, the same order Book uses. The delete is
// still owner-scoped, so a booking removed between the read and the lock fails
// as not found.
func (s *service) cancel(ctx context.Context, principal domain.Principal, bookingID string) (string, error) {
	sctx, cancel := s.storeContext(ctx)
	defer cancel()

	owned, err := s.ledger.GetBookingOwnedBy(sctx, bookingID, principal.ID)
	if err != nil {
		return "", err
	}

	unlock := s.locks.Lock(owned.SpotID)
	defer unlock()

	tx, err := s.ledger.BeginTx(sctx)
	if err != nil {
		return "", err
	}
	defer repository.SafeRollback(sctx, tx)

	booking, err := tx.DeleteBookingOwnedBy(sctx, bookingID, principal.ID)
	if err != nil {
		return "", err
	}

	if _, err := tx.IncrementAvailability(sctx, booking.SpotID); err != nil {
		return "", err
	}

	if err := tx.Commit(sctx); err != nil {
		return "", err
	}
	return booking.SpotID, nil
}

// ListBookings returns the principal's bookings, newest first
func (s *service) ListBookings(ctx context.Context, principal domain.Principal) ([]domain.Booking, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	sctx, cancel := s.storeContext(ctx)
	defer cancel()

	bookings, err := s.ledger.ListBookingsForPrincipal(sctx, principal.ID)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return bookings, nil
}
