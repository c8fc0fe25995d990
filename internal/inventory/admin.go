package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/logger"
)

// GetSpot returns a spot by id. Non-admins only see active spots.
func (s *service) GetSpot(ctx context.Context, principal domain.Principal, spotID string) (*domain.Spot, error) {
	spotID, err := canonicalID(spotID, "spot")
	if err != nil {
		return nil, err
	}

	sctx, cancel := s.storeContext(ctx)
	defer cancel()

	spot, err := s.ledger.GetSpot(sctx, spotID)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	if !principal.IsAdmin && !spot.IsActive() {
		return nil, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
	}
	return spot, nil
}

// CreateSpot adds a new active spot with every unit available
func (s *service) CreateSpot(ctx context.Context, principal domain.Principal, params domain.NewSpotParams) (*domain.Spot, error) {
	log := logger.FromContext(ctx)

	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	name, err := normalizeName(params.Name)
	if err != nil {
		return nil, err
	}
	if err := validateCoordinates(params.Latitude, params.Longitude); err != nil {
		return nil, err
	}
	if err := validateCapacity(params.TotalCapacity); err != nil {
		return nil, err
	}

	spot := &domain.Spot{
		ID:             s.newID(),
		Name:           name,
		Latitude:       params.Latitude,
		Longitude:      params.Longitude,
		TotalCapacity:  params.TotalCapacity,
		AvailableCount: params.TotalCapacity,
		Status:         domain.SpotStatusActive,
	}

	sctx, cancel := s.storeContext(ctx)
	defer cancel()

	if err := s.ledger.CreateSpot(sctx, spot); err != nil {
		err = classifyStoreError(err)
		log.Error(LogMsgAdminOpFailed, "op", "create_spot", "error", err)
		return nil, err
	}

	log.Info(LogMsgSpotCreated, "spot_id", spot.ID, "name", spot.Name, "capacity", spot.TotalCapacity)
	s.publish(ctx, domain.CauseCreated)
	return spot, nil
}

// UpdateSpot changes the display fields of a spot without touching its counts
func (s *service) UpdateSpot(ctx context.Context, principal domain.Principal, spotID string, details domain.SpotDetails) (*domain.Spot, error) {
	log := logger.FromContext(ctx)

	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	name, err := normalizeName(details.Name)
	if err != nil {
		return nil, err
	}
	if err := validateCoordinates(details.Latitude, details.Longitude); err != nil {
		return nil, err
	}
	details.Name = name

	spot, err := s.mutateSpot(ctx, spotID, func(sctx context.Context, id string) (*domain.Spot, error) {
		return s.ledger.UpdateSpotDetails(sctx, id, details)
	})
	if err != nil {
		log.Warn(LogMsgAdminOpFailed, "op", "update_spot", "spot_id", spotID, "error", err)
		return nil, err
	}

	log.Info(LogMsgSpotUpdated, "spot_id", spot.ID, "name", spot.Name)
	s.publish(ctx, domain.CauseUpdated)
	return spot, nil
}

// UpdateCapacity resizes a spot, keeping outstanding bookings. It fails with
// ErrInvalidInput when the new capacity is below the outstanding count.
func (s *service) UpdateCapacity(ctx context.Context, principal domain.Principal, spotID string, newCapacity int) (*domain.Spot, error) {
	log := logger.FromContext(ctx)

	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := validateCapacity(newCapacity); err != nil {
		return nil, err
	}

	spot, err := s.mutateSpot(ctx, spotID, func(sctx context.Context, id string) (*domain.Spot, error) {
		return s.ledger.UpdateCapacity(sctx, id, newCapacity)
	})
	if err != nil {
		log.Warn(LogMsgAdminOpFailed, "op", "update_capacity", "spot_id", spotID, "error", err)
		return nil, err
	}

	log.Info(LogMsgCapacityUpdated, "spot_id", spot.ID, "capacity", spot.TotalCapacity, "available", spot.AvailableCount)
	s.publish(ctx, domain.CauseCapacity)
	return spot, nil
}

// Deactivate hides a spot from the snapshot and rejects new bookings.
// Existing bookings stay valid. Deactivating an inactive spot is not an error.
func (s *service) Deactivate(ctx context.Context, principal domain.Principal, spotID string) (*domain.Spot, error) {
	return s.setStatus(ctx, principal, spotID, domain.SpotStatusInactive, domain.CauseDeactivated)
}

// Reactivate returns an inactive spot to service
func (s *service) Reactivate(ctx context.Context, principal domain.Principal, spotID string) (*domain.Spot, error) {
	return s.setStatus(ctx, principal, spotID, domain.SpotStatusActive, domain.CauseActivated)
}

func (s *service) setStatus(ctx context.Context, principal domain.Principal, spotID string, status domain.SpotStatus, cause string) (*domain.Spot, error) {
	log := logger.FromContext(ctx)

	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	spot, err := s.mutateSpot(ctx, spotID, func(sctx context.Context, id string) (*domain.Spot, error) {
		return s.ledger.SetStatus(sctx, id, status)
	})
	if err != nil {
		log.Warn(LogMsgAdminOpFailed, "op", cause, "spot_id", spotID, "error", err)
		return nil, err
	}

	log.Info(LogMsgSpotStatusChanged, "spot_id", spot.ID, "status", spot.Status)
	s.publish(ctx, cause)
	return spot, nil
}

// mutateSpot runs a single-statement spot mutation under the spot's lock and the store timeout
func (s *service) mutateSpot(ctx context.Context, spotID string, fn func(context.Context, string) (*domain.Spot, error)) (*domain.Spot, error) {
	spotID, err := canonicalID(spotID, "spot")
	if err != nil {
		return nil, err
	}

	var spot *domain.Spot
	err = s.locks.WithLock(spotID, func() error {
		sctx, cancel := s.storeContext(ctx)
		defer cancel()

		var err error
		spot, err = fn(sctx, spotID)
		return err
	})
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return spot, nil
}
