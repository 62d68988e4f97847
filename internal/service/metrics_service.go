package service

import (
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsSnapshot is a point-in-time summary served by the health endpoint.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requestsTotal"`
	AverageRequestDurationMs float64   `json:"averageRequestDurationMs"`
	DBQueryCount             uint64    `json:"dbQueryCount"`
	AverageDBQueryDurationMs float64   `json:"averageDbQueryDurationMs"`
	CacheHits                uint64    `json:"cacheHits"`
	CacheMisses              uint64    `json:"cacheMisses"`
	CacheHitRatio            float64   `json:"cacheHitRatio"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generatedAt"`
}

var metricNamespace = strings.NewReplacer("-", "_", ".", "_", " ", "_")

// MetricsService owns the Prometheus registry of the process.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Histogram
	cacheWrite      prometheus.Histogram
	cacheLookups    *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	requestCount         uint64
	requestDurationTotal uint64
	dbQueryCount         uint64
	dbQueryDurationTotal uint64
	cacheHitCount        uint64
	cacheMissCount       uint64
}

// NewMetricsService registers the HTTP, cache and database collectors under namespace.
func NewMetricsService(namespace string) *MetricsService {
	namespace = metricNamespace.Replace(namespace)
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cache_read_seconds",
		Help:      "Latency of cache lookups",
		Buckets:   prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cache_write_seconds",
		Help:      "Latency of cache writes",
		Buckets:   prometheus.DefBuckets,
	})

	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Cache lookups by result",
	}, []string{"result"})

	dbQueryDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "db_query_duration_seconds",
		Help:      "Duration of database statements",
		Buckets:   prometheus.DefBuckets,
	}, []string{"query"})

	registry.MustRegister(
		requestDuration, requestTotal, cacheLatency, cacheWrite, cacheLookups, dbQueryDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLatency:    cacheLatency,
		cacheWrite:      cacheWrite,
		cacheLookups:    cacheLookups,
		dbQueryDuration: dbQueryDuration,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records one served request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// RecordCacheOperation records a cache lookup and whether it hit.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.Observe(duration.Seconds())
	if hit {
		m.cacheLookups.WithLabelValues("hit").Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
	atomic.AddUint64(&m.cacheMissCount, 1)
}

// ObserveCacheWrite tracks the duration of a cache write.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// ObserveDBQuery records database statement timing.
func (m *MetricsService) ObserveDBQuery(label string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(label).Observe(duration.Seconds())
	atomic.AddUint64(&m.dbQueryCount, 1)
	atomic.AddUint64(&m.dbQueryDurationTotal, uint64(duration.Nanoseconds()))
}

// Snapshot aggregates the counters kept alongside the collectors.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Goroutines: runtime.NumGoroutine(), GeneratedAt: time.Now().UTC()}
	if m == nil {
		return snap
	}
	snap.RequestsTotal = atomic.LoadUint64(&m.requestCount)
	snap.DBQueryCount = atomic.LoadUint64(&m.dbQueryCount)
	snap.CacheHits = atomic.LoadUint64(&m.cacheHitCount)
	snap.CacheMisses = atomic.LoadUint64(&m.cacheMissCount)

	if snap.RequestsTotal > 0 {
		snap.AverageRequestDurationMs = averageMs(atomic.LoadUint64(&m.requestDurationTotal), snap.RequestsTotal)
	}
	if snap.DBQueryCount > 0 {
		snap.AverageDBQueryDurationMs = averageMs(atomic.LoadUint64(&m.dbQueryDurationTotal), snap.DBQueryCount)
	}
	if lookups := snap.CacheHits + snap.CacheMisses; lookups > 0 {
		snap.CacheHitRatio = float64(snap.CacheHits) / float64(lookups)
	}
	return snap
}

func averageMs(totalNanos, count uint64) float64 {
	return float64(totalNanos) / float64(count) / float64(time.Millisecond)
}
