package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the delivery queue
	BroadcastBufferSize = 256

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 16
)

// Connection settings shared by the SSE and WebSocket transports
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// WriteTimeout is the timeout for writing to client connections
	WriteTimeout = 10 * time.Second

	// PongWait is how long a WebSocket peer may stay silent before it is considered gone
	PongWait = 2 * KeepaliveInterval

	// MaxInboundMessageSize bounds frames read from WebSocket observers
	MaxInboundMessageSize = 512
)

// Transport names
const (
	TransportSSE       = "sse"
	TransportWebSocket = "websocket"
)

// Log messages
const (
	LogMsgClientConnected    = "Observer connected"
	LogMsgClientDisconnected = "Observer disconnected"
	LogMsgClientDropped      = "Observer dropped for falling behind"
	LogMsgDeliveryQueueFull  = "Delivery queue full, event dropped"
	LogMsgWelcomeFailed      = "Failed to send current snapshot to observer"
	LogMsgWriteError         = "Failed to write event"
	LogMsgUpgradeFailed      = "WebSocket upgrade failed"
)
