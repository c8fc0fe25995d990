package repository

import (
	"context"

	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/logger"
)

// Tx is a unit of work that must end in exactly one Commit or Rollback.
// Rollback after Commit is allowed and reports a closed transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback rolls back tx, staying quiet when it already committed
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil && err.Error() != domain.ErrMsgTxClosed {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
