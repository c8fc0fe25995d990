package logger

// LogLevelWarningAlias is accepted alongside slog's own "warn"
const LogLevelWarningAlias = "warning"

// LogFormatJSON selects the JSON handler; anything else is text
const LogFormatJSON = "json"

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
