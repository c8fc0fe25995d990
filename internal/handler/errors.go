package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgBodyTooLarge          = "Request body too large"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// Success messages for API responses
const (
	MsgBookingCancelled = "Booking cancelled"
)

// Log messages
const (
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgBookingCreated   = "Booking created"
	LogMsgBookingCancelled = "Booking cancelled"
	LogMsgSpotCreated      = "Spot created"
	LogMsgSpotChanged      = "Spot changed"
)

// Operation names used in logs
const (
	OpBook           = "Book"
	OpCancel         = "Cancel booking"
	OpListBookings   = "List bookings"
	OpListSpots      = "List spots"
	OpGetSpot        = "Get spot"
	OpCreateSpot     = "Create spot"
	OpUpdateSpot     = "Update spot"
	OpUpdateCapacity = "Update capacity"
	OpDeactivate     = "Deactivate spot"
	OpActivate       = "Activate spot"
)

// MaxRequestBodyBytes bounds JSON request bodies
const MaxRequestBodyBytes = 1 << 16

// Path parameters
const (
	ParamID = "id"
)
