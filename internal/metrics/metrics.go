package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache names used as the cache label
const (
	CacheValues    = "values"
	CacheArtifacts = "artifacts"
)

var (
	// Core request/hit/miss counters
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "psi_cache_requests_total",
			Help: "Total number of cache lookups",
		},
		[]string{"cache"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "psi_cache_hits_total",
			Help: "Total number of fresh cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "psi_cache_misses_total",
			Help: "Total number of cache misses, including stale entries",
		},
		[]string{"cache"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "psi_cache_entries",
			Help: "Number of entries currently held by the cache",
		},
		[]string{"cache"},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "psi_cache_errors_total",
			Help: "Cache errors by operation",
		},
		[]string{"cache", "operation"},
	)

	// Generation tiers
	Generations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "psi_artifact_generations_total",
			Help: "Artifact generation attempts by tier and outcome",
		},
		[]string{"tier", "outcome"},
	)

	// Remote calls
	RemoteCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "psi_remote_call_duration_seconds",
			Help:    "Duration of outbound calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)

	RemoteCallErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "psi_remote_call_errors_total",
			Help: "Failed outbound calls by category",
		},
		[]string{"service", "operation", "category"},
	)

	// Quota
	QuotaConsumed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "psi_quota_consumed_total",
			Help: "Quota units granted",
		},
	)

	QuotaRefused = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "psi_quota_refused_total",
			Help: "Quota checks refused because the daily limit was reached",
		},
	)

	QuotaRemaining = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "psi_quota_remaining",
			Help: "Quota units left for the current UTC day",
		},
	)

	// Persistence
	PersistErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "psi_persist_errors_total",
			Help: "Snapshot load/save failures",
		},
		[]string{"target", "operation"},
	)

	// Bot updates
	BotUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "psi_bot_updates_total",
			Help: "Inbound bot updates by type",
		},
		[]string{"type"},
	)
)

// RecordCacheHit records a fresh hit
func RecordCacheHit(cache string) {
	CacheRequests.WithLabelValues(cache).Inc()
	CacheHits.WithLabelValues(cache).Inc()
}

// RecordCacheMiss records a miss or stale entry
func RecordCacheMiss(cache string) {
	CacheRequests.WithLabelValues(cache).Inc()
	CacheMisses.WithLabelValues(cache).Inc()
}

// RecordCacheError records a cache error for operation
func RecordCacheError(cache, operation string) {
	CacheErrors.WithLabelValues(cache, operation).Inc()
}

// UpdateCacheEntries sets the entry gauge for cache
func UpdateCacheEntries(cache string, n int) {
	CacheEntries.WithLabelValues(cache).Set(float64(n))
}

// RecordGeneration records the outcome of one generation tier
func RecordGeneration(tier string, err error) {
	outcome := "success"
	if err != nil {
		outcome = string(CategorizeError(err, 0))
	}
	Generations.WithLabelValues(tier, outcome).Inc()
}

// RecordRemoteError records a failed outbound call
func RecordRemoteError(service, operation string, err error, httpStatus int) {
	RemoteCallErrors.WithLabelValues(service, operation, string(CategorizeError(err, httpStatus))).Inc()
}

// TimeRemoteCall returns a function that observes the call duration when invoked
func TimeRemoteCall(service, operation string) func() {
	timer := prometheus.NewTimer(RemoteCallDuration.WithLabelValues(service, operation))
	return func() {
		timer.ObserveDuration()
	}
}

// RecordQuota records a quota decision and the units left afterwards
func RecordQuota(allowed bool, remaining int) {
	if allowed {
		QuotaConsumed.Inc()
	} else {
		QuotaRefused.Inc()
	}
	QuotaRemaining.Set(float64(remaining))
}

// RecordPersistError records a snapshot failure
func RecordPersistError(target, operation string) {
	PersistErrors.WithLabelValues(target, operation).Inc()
}

// RecordBotUpdate records an inbound update
func RecordBotUpdate(updateType string) {
	BotUpdates.WithLabelValues(updateType).Inc()
}
