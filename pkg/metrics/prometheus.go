// Package metrics provides Prometheus metrics for the benchrank service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Catalog metrics
	catalogLookups      *prometheus.CounterVec
	catalogRecords      *prometheus.GaugeVec
	catalogLoadDuration prometheus.Histogram

	// Ranking metrics
	rankRequests       prometheus.Counter
	rankEntriesValid   prometheus.Counter
	rankEntriesInvalid prometheus.Counter

	// Selection metrics
	selectRequests *prometheus.CounterVec

	// Price feed metrics
	pricefeedRequests *prometheus.CounterVec
	pricefeedLatency  prometheus.Histogram

	// Price refresh queue metrics
	queueSize      prometheus.Gauge
	queueCapacity  prometheus.Gauge
	queueEnqueues  *prometheus.CounterVec
	queueDequeues  prometheus.Counter
	priceRefreshes *prometheus.CounterVec

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "benchrank",
		subsystem:        "catalog",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.catalogLookups = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "lookups_total",
			Help:      "Total number of catalog name lookups by catalog and result",
		},
		[]string{"catalog", "result"},
	)

	m.catalogRecords = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "records",
			Help:      "Number of benchmark records loaded per catalog",
		},
		[]string{"catalog"},
	)

	m.catalogLoadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "load_duration_milliseconds",
		Help:      "Duration of the one-time benchmark catalog load in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.rankRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_requests_total",
		Help:      "Total number of balance ranking requests",
	})

	m.rankEntriesValid = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_entries_valid_total",
		Help:      "Total number of ranking entries that received a balance score",
	})

	m.rankEntriesInvalid = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_entries_invalid_total",
		Help:      "Total number of ranking entries rejected with an error tag",
	})

	m.selectRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "select_requests_total",
			Help:      "Total number of price-window selection requests by result",
		},
		[]string{"result"},
	)

	m.pricefeedRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "pricefeed",
			Name:      "requests_total",
			Help:      "Total number of price feed requests by status",
		},
		[]string{"status"},
	)

	m.pricefeedLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "pricefeed",
		Name:      "request_duration_milliseconds",
		Help:      "Price feed request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "pricewatch",
		Name:      "queue_size",
		Help:      "Current number of pending price refresh jobs",
	})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "pricewatch",
		Name:      "queue_capacity",
		Help:      "Configured capacity of the price refresh queue",
	})

	m.queueEnqueues = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "pricewatch",
			Name:      "enqueues_total",
			Help:      "Total price refresh enqueue attempts by result",
		},
		[]string{"result"},
	)

	m.queueDequeues = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "pricewatch",
		Name:      "dequeues_total",
		Help:      "Total price refresh jobs handed to workers",
	})

	m.priceRefreshes = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "pricewatch",
			Name:      "refreshes_total",
			Help:      "Total price refresh jobs completed by result",
		},
		[]string{"result"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordCatalogLookup records one name lookup and its outcome.
func RecordCatalogLookup(catalog string, found bool) {
	if !globalManager.enabled {
		return
	}
	result := "hit"
	if !found {
		result = "miss"
	}
	globalManager.catalogLookups.WithLabelValues(catalog, result).Inc()
}

// UpdateCatalogRecords sets the record count gauge for a catalog.
func UpdateCatalogRecords(catalog string, count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.catalogRecords.WithLabelValues(catalog).Set(float64(count))
}

// RecordCatalogLoadDuration records the one-time load duration.
func RecordCatalogLoadDuration(durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.catalogLoadDuration.Observe(durationMs)
}

// RecordRankRequest records a ranking request and its entry counts.
func RecordRankRequest(valid, invalid int) {
	if !globalManager.enabled {
		return
	}
	globalManager.rankRequests.Inc()
	globalManager.rankEntriesValid.Add(float64(valid))
	globalManager.rankEntriesInvalid.Add(float64(invalid))
}

// RecordSelectRequest records a selection request outcome
// ("selected", "not_found", "no_prices").
func RecordSelectRequest(result string) {
	if !globalManager.enabled {
		return
	}
	globalManager.selectRequests.WithLabelValues(result).Inc()
}

// RecordPricefeedRequest records a price feed call by status with latency.
func RecordPricefeedRequest(status string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.pricefeedRequests.WithLabelValues(status).Inc()
	globalManager.pricefeedLatency.Observe(durationMs)
}

// UpdateQueueSize sets the pending price refresh job gauge.
func UpdateQueueSize(size int) {
	if !globalManager.enabled {
		return
	}
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the configured queue capacity gauge.
func UpdateQueueCapacity(capacity int) {
	if !globalManager.enabled {
		return
	}
	globalManager.queueCapacity.Set(float64(capacity))
}

// RecordQueueEnqueue records an enqueue attempt ("ok", "full", "closed").
func RecordQueueEnqueue(result string) {
	if !globalManager.enabled {
		return
	}
	globalManager.queueEnqueues.WithLabelValues(result).Inc()
}

// RecordQueueDequeue records a job handed to a worker.
func RecordQueueDequeue() {
	if !globalManager.enabled {
		return
	}
	globalManager.queueDequeues.Inc()
}

// RecordPriceRefresh records a completed refresh job ("ok", "empty", "error").
func RecordPriceRefresh(result string) {
	if !globalManager.enabled {
		return
	}
	globalManager.priceRefreshes.WithLabelValues(result).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom registry serving /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
