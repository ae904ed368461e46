package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "billing_"

var (
	registerOnce sync.Once

	statementReads       *prometheus.CounterVec
	statementReadLatency *prometheus.HistogramVec

	cacheHits          *prometheus.CounterVec
	cacheMisses        *prometheus.CounterVec
	cacheInvalidations prometheus.Counter
)

// Init registers billing metrics with the default prometheus registry.
// Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		statementReads = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_reads_total",
				Help: "Total statement reads by entity kind and result",
			},
			[]string{"entity", "result"},
		)
		statementReadLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "statement_read_latency_seconds",
				Help:    "Statement read latency in seconds by entity kind",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"entity"},
		)
		cacheHits = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_cache_hits_total",
				Help: "Total statement cache hits by entity kind",
			},
			[]string{"entity"},
		)
		cacheMisses = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_cache_misses_total",
				Help: "Total statement cache misses by entity kind (failures count as misses)",
			},
			[]string{"entity"},
		)
		cacheInvalidations = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_cache_invalidations_total",
				Help: "Total statement cache invalidations",
			},
		)

		prometheus.MustRegister(
			statementReads,
			statementReadLatency,
			cacheHits,
			cacheMisses,
			cacheInvalidations,
		)
	})
}

// StatementRead records the outcome of one statement read.
func StatementRead(entity, result string, elapsed time.Duration) {
	if statementReads == nil {
		return
	}
	statementReads.WithLabelValues(entity, result).Inc()
	statementReadLatency.WithLabelValues(entity).Observe(elapsed.Seconds())
}

// CacheHit records a statement cache hit.
func CacheHit(entity string) {
	if cacheHits == nil {
		return
	}
	cacheHits.WithLabelValues(entity).Inc()
}

// CacheMiss records a statement cache miss.
func CacheMiss(entity string) {
	if cacheMisses == nil {
		return
	}
	cacheMisses.WithLabelValues(entity).Inc()
}

// CacheInvalidation records one invalidation of a student+school key pair.
func CacheInvalidation() {
	if cacheInvalidations == nil {
		return
	}
	cacheInvalidations.Inc()
}
