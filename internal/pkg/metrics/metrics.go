package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "geo_gateway"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	UpstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Outbound calls to the location service by operation and outcome.",
	}, []string{"operation", "outcome"})

	UpstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Outbound call latency in seconds, including body read.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Inbound HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(UpstreamRequests, UpstreamDuration, HTTPRequests)
}

// ObserveUpstream записывает исход и длительность одного исходящего вызова
func ObserveUpstream(operation, outcome string, elapsed time.Duration) {
	UpstreamRequests.WithLabelValues(operation, outcome).Inc()
	UpstreamDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
