package domain

// Observer event types
const (
	// EventTypeSnapshot carries a full active-spot snapshot
	EventTypeSnapshot = "spots.snapshot"

	// EventTypeConnected is the first event an observer receives
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)
