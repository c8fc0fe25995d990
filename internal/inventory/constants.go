package inventory

import "time"

// DefaultStoreTimeout bounds every store call made by the engine
const DefaultStoreTimeout = 5 * time.Second

// Error messages
const (
	ErrMsgAdminRequired       = "admin privileges required"
	ErrMsgMalformedID         = "malformed"
	ErrMsgNameRequired        = "name is required"
	ErrMsgNameTooLongFmt      = "name exceeds %d characters"
	ErrMsgNameControlChars    = "name contains control characters"
	ErrMsgLatitudeRangeFmt    = "latitude %v outside [%v, %v]"
	ErrMsgLongitudeRangeFmt   = "longitude %v outside [%v, %v]"
	ErrMsgCapacityRangeFmt    = "capacity %d outside [0, %d]"
	ErrMsgCapacityBelowOutFmt = "capacity %d below %d outstanding bookings"
)

// Log messages
const (
	LogMsgBookingCreated     = "Booking created"
	LogMsgBookingFailed      = "Booking failed"
	LogMsgBookingCancelled   = "Booking cancelled"
	LogMsgCancelFailed       = "Cancellation failed"
	LogMsgSpotCreated        = "Spot created"
	LogMsgSpotUpdated        = "Spot details updated"
	LogMsgCapacityUpdated    = "Spot capacity updated"
	LogMsgSpotStatusChanged  = "Spot status changed"
	LogMsgAdminOpFailed      = "Admin operation failed"
	LogMsgSnapshotReadFailed = "Snapshot read failed"
)
