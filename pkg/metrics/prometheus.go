// Package metrics provides Prometheus metrics for the jumpstart
// recommendation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Ranking metrics
	rankingsComputed  *prometheus.CounterVec
	rankingDuration   *prometheus.HistogramVec
	itemsScored       prometheus.Counter
	recommendedItems  *prometheus.GaugeVec
	catalogSize       *prometheus.GaugeVec
	projectsTracked   prometheus.Gauge
	customItemsStored prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "jumpstart",
		subsystem:        "recommend",
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

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rankingsComputed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rankings_computed_total",
		Help:      "Total number of catalog rankings computed, by catalog kind",
	}, []string{"kind"})

	m.rankingDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_duration_milliseconds",
		Help:      "Time spent computing one catalog ranking",
		Buckets:   m.histogramBuckets,
	}, []string{"kind"})

	m.itemsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "items_scored_total",
		Help:      "Total number of catalog items scored",
	})

	m.recommendedItems = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommended_items",
		Help:      "Recommended item count in the most recent ranking, by kind",
	}, []string{"kind"})

	m.catalogSize = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_size",
		Help:      "Number of items per catalog kind, built-in plus custom",
	}, []string{"kind"})

	m.projectsTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "projects_tracked",
		Help:      "Number of project profiles currently stored",
	})

	m.customItemsStored = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "custom_items_stored",
		Help:      "Number of user-created catalog items currently stored",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method, and status",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.httpErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_errors_total",
		Help:      "Total number of HTTP error responses by endpoint and type",
	}, []string{"endpoint", "error_type"})
}

// GetRegistry returns the registry backing the global manager, for use with
// promhttp handlers.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordRanking records one completed ranking call.
func RecordRanking(kind string, scored, recommended int, durationMs float64) {
	m := globalManager
	if !m.enabled {
		return
	}
	m.rankingsComputed.WithLabelValues(kind).Inc()
	m.rankingDuration.WithLabelValues(kind).Observe(durationMs)
	m.itemsScored.Add(float64(scored))
	m.recommendedItems.WithLabelValues(kind).Set(float64(recommended))
}

// UpdateCatalogSize sets the current item count for a catalog kind.
func UpdateCatalogSize(kind string, size int) {
	if globalManager.enabled {
		globalManager.catalogSize.WithLabelValues(kind).Set(float64(size))
	}
}

// UpdateProjectsTracked sets the current stored-profile count.
func UpdateProjectsTracked(n int) {
	if globalManager.enabled {
		globalManager.projectsTracked.Set(float64(n))
	}
}

// UpdateCustomItems sets the current user-created item count.
func UpdateCustomItems(n int) {
	if globalManager.enabled {
		globalManager.customItemsStored.Set(float64(n))
	}
}

// RecordHTTPRequest records one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration records the duration of one HTTP request.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
	}
}

// RecordHTTPError records one HTTP error response.
func RecordHTTPError(endpoint, errorType string) {
	if globalManager.enabled {
		globalManager.httpErrors.WithLabelValues(endpoint, errorType).Inc()
	}
}
