package snapshot

import "time"

// DefaultReadTimeout bounds the store read behind each publication
const DefaultReadTimeout = 5 * time.Second

// Log messages
const (
	LogMsgPublishDropped   = "Snapshot publication dropped, dispatch queue full"
	LogMsgPublishFailed    = "Snapshot publication failed"
	LogMsgDeliveryRejected = "Snapshot not accepted for delivery"
	LogMsgPublished        = "Snapshot published"
	LogMsgNotifyFailed     = "Failed to notify other instances"
)

// Error messages
const (
	ErrMsgReadFailed      = "reading active spots"
	ErrMsgWelcomeRejected = "initial snapshot not accepted for delivery"
)
