package inventory

import (
	"context"

	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/logger"
)

// CurrentSnapshot reads the active spots on demand. Every call starts its own
// store read, so a caller always sees its own completed mutations.
func (s *service) CurrentSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	sctx, cancel := s.storeContext(ctx)
	defer cancel()

	spots, err := s.ledger.ListActiveSpots(sctx)
	if err != nil {
		err = classifyStoreError(err)
		logger.FromContext(ctx).Error(LogMsgSnapshotReadFailed, "error", err)
		return nil, err
	}
	return &domain.Snapshot{ReadAt: s.now().UTC(), Spots: spots}, nil
}
