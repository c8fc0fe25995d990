package snapshot

import (
	"context"

	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/worker"
)

// SpotReader reads the active spots from the store
type SpotReader interface {
	ListActiveSpots(ctx context.Context) ([]domain.Spot, error)
}

// Broadcaster delivers events to registered observers in queue order
type Broadcaster interface {
	Broadcast(eventType, id string, payload interface{}) bool
	SendTo(clientID, eventType, id string, payload interface{}) bool
}

// Dispatcher runs jobs off the request path without blocking the caller
type Dispatcher interface {
	TryEnqueue(job worker.Job) bool
}

// Notifier tells other instances that the spots changed
type Notifier interface {
	Notify(ctx context.Context, cause string) error
}
