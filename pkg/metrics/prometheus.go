// Package metrics provides Prometheus metrics for the pitchkit render service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         *prometheus.Registry

	// Render metrics, labeled by render kind (pitch, passes, frame, surface).
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
	encodedBytes   prometheus.Histogram

	// Render cache metrics.
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	cacheSize   prometheus.Gauge

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics.
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global manager on a custom registry so default Go collectors stay out.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager()
}

// NewManager creates a metrics manager and registers all collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pitchkit",
		subsystem:        "render",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initCollectors()
	return m
}

func (m *Manager) initCollectors() {
	auto := promauto.With(m.registry)

	m.rendersTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "images_total",
		Help:      "Total number of images rendered, by render kind",
	}, []string{"kind"})

	m.renderDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duration_milliseconds",
		Help:      "Render duration in milliseconds, by render kind",
		Buckets:   m.histogramBuckets,
	}, []string{"kind"})

	m.renderErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Total number of failed renders, by render kind",
	}, []string{"kind"})

	m.encodedBytes = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "encoded_bytes",
		Help:      "Size of encoded PNG output in bytes",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
	})

	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_hits_total",
		Help:      "Render cache hits",
	})

	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_misses_total",
		Help:      "Render cache misses",
	})

	m.cacheSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_entries",
		Help:      "Current number of cached rendered images",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// Handler returns an HTTP handler serving this manager's registry.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Package-level helpers operating on the global manager.

// RecordRender records one completed render of the given kind.
func RecordRender(kind string, duration time.Duration, encodedBytes int) {
	if !globalManager.enabled {
		return
	}
	globalManager.rendersTotal.WithLabelValues(kind).Inc()
	globalManager.renderDuration.WithLabelValues(kind).Observe(float64(duration.Milliseconds()))
	globalManager.encodedBytes.Observe(float64(encodedBytes))
}

// RecordRenderError records one failed render of the given kind.
func RecordRenderError(kind string) {
	if !globalManager.enabled {
		return
	}
	globalManager.renderErrors.WithLabelValues(kind).Inc()
}

// RecordCacheHit and RecordCacheMiss track render cache effectiveness.
func RecordCacheHit()  { globalManager.cacheHits.Inc() }
func RecordCacheMiss() { globalManager.cacheMisses.Inc() }

// UpdateCacheSize sets the current cache entry count.
func UpdateCacheSize(n int) { globalManager.cacheSize.Set(float64(n)) }

// RecordHTTPRequest records one HTTP request.
func RecordHTTPRequest(endpoint, method, status string, duration time.Duration) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(float64(duration.Milliseconds()))
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(alloc uint64) { globalManager.systemMemoryUsage.Set(float64(alloc)) }

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) { globalManager.systemGoroutineCount.Set(float64(n)) }

// RefreshInterval returns the period the system gauges should be refreshed at.
func RefreshInterval() time.Duration { return globalManager.refreshInterval }

// Handler serves the global registry over HTTP.
func Handler() http.Handler { return globalManager.Handler() }
