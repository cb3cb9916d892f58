package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	defaultRefreshInterval = 10 * time.Second
)

// Label values shared with callers.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusSkipped = "skipped"
)

// Manager owns every Prometheus collector of the bot.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	refreshInterval  time.Duration
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Run metrics
	runs              *prometheus.CounterVec
	runDuration       prometheus.Histogram
	gamesProcessed    prometheus.Counter
	battersScored     prometheus.Counter
	battersMissing    *prometheus.CounterVec
	matchupsByTier    *prometheus.CounterVec
	lastRunUnix       prometheus.Gauge
	lastRunCoverage   prometheus.Gauge
	rankingListLength *prometheus.GaugeVec

	// Publishing
	publications   *prometheus.CounterVec
	publishLatency prometheus.Histogram
	publishRetries prometheus.Counter

	// Outbox
	outboxSize          prometheus.Gauge
	outboxCapacity      prometheus.Gauge
	outboxEnqueued      prometheus.Counter
	outboxDequeued      prometheus.Counter
	outboxEnqueueErrors prometheus.Counter

	// Repository
	historySize prometheus.Gauge
	archived    *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "matchup",
		subsystem:        "bot",
		histogramBuckets: prometheus.DefBuckets,
		refreshInterval:  defaultRefreshInterval,
		constLabels:      make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, Buckets: buckets, ConstLabels: m.constLabels}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	runBuckets := []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000}

	m.runs = auto.NewCounterVec(m.counterOpts("runs_total", "Scoring runs by outcome"), []string{"status"})
	m.runDuration = auto.NewHistogram(m.histogramOpts("run_duration_milliseconds", "Wall time of one scoring run", runBuckets))
	m.gamesProcessed = auto.NewCounter(m.counterOpts("games_processed_total", "Games turned into reports"))
	m.battersScored = auto.NewCounter(m.counterOpts("batters_scored_total", "Batter matchups scored"))
	m.battersMissing = auto.NewCounterVec(m.counterOpts("batters_missing_total", "Lineup batters left unscored, by reason"), []string{"reason"})
	m.matchupsByTier = auto.NewCounterVec(m.counterOpts("matchups_by_reliability_total", "Scored matchups by reliability tier"), []string{"tier"})
	m.lastRunUnix = auto.NewGauge(m.gaugeOpts("last_run_unix", "Unix time of the last successful run"))
	m.lastRunCoverage = auto.NewGauge(m.gaugeOpts("last_run_coverage_ratio", "Share of lineup batters scored in the last run"))
	m.rankingListLength = auto.NewGaugeVec(m.gaugeOpts("ranking_list_length", "Entries in each ranking list of the last run"), []string{"list"})

	m.publications = auto.NewCounterVec(m.counterOpts("publications_total", "Publication attempts by list and outcome"), []string{"kind", "status"})
	m.publishLatency = auto.NewHistogram(m.histogramOpts("publish_latency_milliseconds", "Sink delivery latency", m.histogramBuckets))
	m.publishRetries = auto.NewCounter(m.counterOpts("publish_retries_total", "Sink delivery retries after rate limiting"))

	m.outboxSize = auto.NewGauge(m.gaugeOpts("outbox_size", "Messages waiting in the outbox"))
	m.outboxCapacity = auto.NewGauge(m.gaugeOpts("outbox_capacity", "Outbox capacity"))
	m.outboxEnqueued = auto.NewCounter(m.counterOpts("outbox_enqueue_total", "Messages enqueued"))
	m.outboxDequeued = auto.NewCounter(m.counterOpts("outbox_dequeue_total", "Messages dequeued"))
	m.outboxEnqueueErrors = auto.NewCounter(m.counterOpts("outbox_enqueue_errors_total", "Messages rejected by the outbox"))

	m.historySize = auto.NewGauge(m.gaugeOpts("history_size", "Run reports held in memory"))
	m.archived = auto.NewCounterVec(m.counterOpts("archive_writes_total", "Run report archive writes by outcome"), []string{"status"})

	m.httpRequests = auto.NewCounterVec(m.counterOpts("http_requests_total", "HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"})
	m.httpErrors = auto.NewCounterVec(m.counterOpts("http_errors_total", "HTTP error responses by endpoint and type"),
		[]string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "Heap bytes in use"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
}

// RecordRun counts a finished run and its duration.
func RecordRun(status string, d time.Duration) {
	globalManager.runs.WithLabelValues(status).Inc()
	globalManager.runDuration.Observe(float64(d.Milliseconds()))
}

// RecordGamesProcessed adds to the games counter.
func RecordGamesProcessed(n int) {
	globalManager.gamesProcessed.Add(float64(n))
}

// RecordBatterScored counts one scored matchup and its reliability tier.
func RecordBatterScored(tier string) {
	globalManager.battersScored.Inc()
	globalManager.matchupsByTier.WithLabelValues(tier).Inc()
}

// RecordBatterMissing counts an unscored lineup batter.
func RecordBatterMissing(reason string) {
	globalManager.battersMissing.WithLabelValues(reason).Inc()
}

// UpdateLastRun sets the last-run gauges.
func UpdateLastRun(at time.Time, coverage float64) {
	globalManager.lastRunUnix.Set(float64(at.Unix()))
	globalManager.lastRunCoverage.Set(coverage)
}

// UpdateRankingListLength sets the size of one ranking list.
func UpdateRankingListLength(list string, n int) {
	globalManager.rankingListLength.WithLabelValues(list).Set(float64(n))
}

// RecordPublication counts one publication attempt.
func RecordPublication(kind, status string) {
	globalManager.publications.WithLabelValues(kind, status).Inc()
}

// RecordPublishLatency records sink delivery latency in milliseconds.
func RecordPublishLatency(latencyMs float64) {
	globalManager.publishLatency.Observe(latencyMs)
}

// RecordPublishRetry counts a rate-limited retry.
func RecordPublishRetry() {
	globalManager.publishRetries.Inc()
}

// UpdateOutboxSize sets the current outbox depth.
func UpdateOutboxSize(size int) {
	globalManager.outboxSize.Set(float64(size))
}

// UpdateOutboxCapacity sets the outbox capacity.
func UpdateOutboxCapacity(capacity int) {
	globalManager.outboxCapacity.Set(float64(capacity))
}

// RecordOutboxEnqueue increments the enqueue counter.
func RecordOutboxEnqueue() {
	globalManager.outboxEnqueued.Inc()
}

// RecordOutboxDequeue increments the dequeue counter.
func RecordOutboxDequeue() {
	globalManager.outboxDequeued.Inc()
}

// RecordOutboxEnqueueError increments the enqueue error counter.
func RecordOutboxEnqueueError() {
	globalManager.outboxEnqueueErrors.Inc()
}

// UpdateHistorySize sets the number of stored run reports.
func UpdateHistorySize(n int) {
	globalManager.historySize.Set(float64(n))
}

// RecordArchiveWrite counts an archive write.
func RecordArchiveWrite(status string) {
	globalManager.archived.WithLabelValues(status).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordHTTPError counts an HTTP error response.
func RecordHTTPError(endpoint, method, errorType string) {
	globalManager.httpErrors.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the heap usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// StartSystemSampler samples runtime gauges every refresh interval until ctx
// is done.
func StartSystemSampler(ctx context.Context) {
	interval := globalManager.refreshInterval
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			sampleSystem()
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
		}
	}()
}

func sampleSystem() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	UpdateSystemMemoryUsage(ms.HeapInuse)
	UpdateSystemGoroutineCount(runtime.NumGoroutine())
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
