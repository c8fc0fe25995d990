package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Inventory metric names
const (
	MetricNameBookingsTotal      = "bookings_total"
	MetricNameCancellationsTotal = "cancellations_total"
)

// Publication metric names
const (
	MetricNameSnapshotPublications = "snapshot_publications_total"
	MetricNameObserversConnected   = "observers_connected"
	MetricNameObserversDropped     = "observers_dropped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Inventory metric help text
const (
	HelpTextBookingsTotal      = "Total number of booking attempts by result"
	HelpTextCancellationsTotal = "Total number of cancellation attempts by result"
)

// Publication metric help text
const (
	HelpTextSnapshotPublications = "Total number of snapshot publications by result"
	HelpTextObserversConnected   = "Current number of connected snapshot observers"
	HelpTextObserversDropped     = "Total number of observers dropped for falling behind"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult = "result"
)

// Result label values
const (
	ResultSuccess   = "success"
	ResultNotFound  = "not_found"
	ResultExhausted = "exhausted"
	ResultInvalid   = "invalid"
	ResultForbidden = "forbidden"
	ResultError     = "error"
	ResultDropped   = "dropped"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
