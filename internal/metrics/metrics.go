package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Inventory Metrics
var (
	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBookingsTotal,
			Help: HelpTextBookingsTotal,
		},
		[]string{LabelResult},
	)

	CancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCancellationsTotal,
			Help: HelpTextCancellationsTotal,
		},
		[]string{LabelResult},
	)
)

// Publication Metrics
var (
	SnapshotPublications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotPublications,
			Help: HelpTextSnapshotPublications,
		},
		[]string{LabelResult},
	)

	ObserversConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameObserversConnected,
			Help: HelpTextObserversConnected,
		},
	)

	ObserversDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameObserversDropped,
			Help: HelpTextObserversDropped,
		},
	)
)
