package sse

import "context"

// Welcomer queues the current state for a newly registered client so it
// arrives before any later broadcast
type Welcomer interface {
	Welcome(ctx context.Context, clientID string) error
}

// ConnectedPayload is the first event every observer receives
type ConnectedPayload struct {
	ClientID  string `json:"client_id"`
	Transport string `json:"transport"`
}
