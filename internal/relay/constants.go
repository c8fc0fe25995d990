package relay

import "time"

// DefaultChannel is the Redis channel notices are exchanged on
const DefaultChannel = "urbanpark:spots"

// Client settings
const (
	DefaultPoolSize  = 10
	DefaultPingWait  = 3 * time.Second
	NotifyTimeout    = 2 * time.Second
	noticeSchemaV1   = 1
	maxNoticePayload = 1024
)

// Log messages
const (
	LogMsgSubscribed      = "Relay subscribed"
	LogMsgStopped         = "Relay stopped"
	LogMsgInvalidNotice   = "Ignoring malformed relay notice"
	LogMsgRemoteChange    = "Spots changed on another instance"
	LogMsgSubscribeFailed = "Relay subscription failed"
)

// Error messages
const (
	ErrMsgMarshalNotice = "encoding relay notice"
	ErrMsgPublishNotice = "publishing relay notice"
	ErrMsgSubscribe     = "subscribing to relay channel"
	ErrMsgPing          = "pinging redis"
)
