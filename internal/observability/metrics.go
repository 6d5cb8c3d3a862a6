// Package observability provides Prometheus metrics for application internals.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "atmos_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// UpstreamRequestDuration records outbound provider call latency.
	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "atmos_upstream_request_duration_seconds",
		Help:    "Outbound third-party API call latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})

	// UpstreamErrors counts failed outbound provider calls.
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "atmos_upstream_errors_total",
		Help: "Total number of failed outbound third-party API calls",
	}, []string{"provider"})
)

// ObserveUpstream records the latency of an outbound provider call and,
// when err is non-nil, increments the provider's error counter.
func ObserveUpstream(provider string, start time.Time, err error) {
	UpstreamRequestDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	if err != nil {
		UpstreamErrors.WithLabelValues(provider).Inc()
	}
}
