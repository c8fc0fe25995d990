package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/UrbanPark_Go/internal/database/generated"
	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgFailedToRollback, "error", err)
	}
}

// parseID parses a spot or booking id. A malformed id cannot name a row,
// so it is reported as not found.
func parseID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s %q", domain.ErrNotFound, ErrMsgInvalidID, id)
	}
	return u, nil
}

// storeErr wraps a driver error as a store failure, keeping the original chain
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreFailure, op, err)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeCheckViolation
}

// lockSpot reads a spot with FOR UPDATE. The row lock is why this one read
// stays outside the generated queries.
func lockSpot(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Spot, error) {
	var row generated.Spot
	err := tx.QueryRow(ctx, `
		SELECT spot_id, name, latitude, longitude, total_capacity, available_count, status, created_at, updated_at
		FROM spots WHERE spot_id = $1
		FOR UPDATE`, id).Scan(
		&row.SpotID, &row.Name, &row.Latitude, &row.Longitude, &row.TotalCapacity,
		&row.AvailableCount, &row.Status, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return mapSpot(row), nil
}

// mapSpot converts a generated spot row into the domain type
func mapSpot(row generated.Spot) *domain.Spot {
	return &domain.Spot{
		ID:             row.SpotID.String(),
		Name:           row.Name,
		Latitude:       row.Latitude,
		Longitude:      row.Longitude,
		TotalCapacity:  int(row.TotalCapacity),
		AvailableCount: int(row.AvailableCount),
		Status:         domain.SpotStatus(row.Status),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
