// Package metrics provides centralized Prometheus metrics for the application.
// All metrics register with the default registry and are exposed via /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track request patterns and performance.
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	// Buckets cover fast local reads through slow storage-bound writes so
	// p95/p99 remain measurable at both ends.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestSize measures HTTP request body size in bytes.
	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes.
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInFlight tracks requests currently being served.
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Ingestion metrics track the article write path.
var (
	// ArticlesIngestedTotal counts creation attempts by outcome: created,
	// missing_source, missing_topics, duplicate_link, invalid, storage_error.
	ArticlesIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_ingested_total",
			Help: "Total number of article creation attempts by outcome",
		},
		[]string{"outcome"},
	)

	// CompensatingDeletesTotal counts rollbacks of article rows after failed
	// association writes, by result.
	CompensatingDeletesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_compensating_deletes_total",
			Help: "Total number of compensating article deletes by result",
		},
		[]string{"result"},
	)

	// TopicAssociationsTotal counts topic association rows written.
	TopicAssociationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "article_topic_associations_total",
			Help: "Total number of article-topic association rows written",
		},
	)
)

// Inventory gauges reflect current database contents.
var (
	// ArticlesTotal is the total number of articles in the database.
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in the database",
		},
	)

	// SourcesTotal is the total number of registered sources.
	SourcesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sources_total",
			Help: "Total number of sources in the database",
		},
	)

	// TopicsTotal is the total number of registered topics.
	TopicsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "topics_total",
			Help: "Total number of topics in the database",
		},
	)
)

// Storage metrics track database interaction.
var (
	// DBQueryDuration measures database query duration by operation.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// CircuitBreakerState reports breaker state per name
	// (0 closed, 1 half-open, 2 open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)
