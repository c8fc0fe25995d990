package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeCheckViolation is raised when a row breaks a CHECK constraint
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Spot Operations
const (
	ErrMsgInvalidID                = "invalid id"
	ErrMsgFailedToGetSpot          = "failed to get spot"
	ErrMsgFailedToListSpots        = "failed to list active spots"
	ErrMsgFailedToInsertSpot       = "failed to insert spot"
	ErrMsgFailedToUpdateSpot       = "failed to update spot"
	ErrMsgFailedToUpdateCapacity   = "failed to update capacity"
	ErrMsgFailedToSetStatus        = "failed to set spot status"
	ErrMsgFailedToDecrement        = "failed to decrement availability"
	ErrMsgFailedToIncrement        = "failed to increment availability"
	ErrMsgSpotIDConflict           = "spot id already exists"
	ErrMsgSpotConstraintViolated   = "spot violates a schema constraint"
	ErrMsgCapacityBelowOutstanding = "capacity below outstanding bookings"
)

// Error Messages - Booking Operations
const (
	ErrMsgFailedToGetBooking    = "failed to get booking"
	ErrMsgFailedToInsertBooking = "failed to insert booking"
	ErrMsgFailedToDeleteBooking = "failed to delete booking"
	ErrMsgFailedToListBookings  = "failed to list bookings"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
