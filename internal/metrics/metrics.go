// Package metrics collects and exposes Prometheus metrics for the library
// service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Repository operation labels.
const (
	OpUpsert = "upsert"
	OpList   = "list"
	OpCount  = "count"
)

// MetricsCollector is used by the service layer and the gRPC interceptors.
type MetricsCollector interface {
	RecordRPC(method, code string, duration time.Duration)
	RecordRepositoryCall(op string, duration time.Duration, err error)
}

// Collector is the Prometheus-backed MetricsCollector.
type Collector struct {
	rpcTotal    *prometheus.CounterVec
	rpcLatency  *prometheus.HistogramVec
	repoTotal   *prometheus.CounterVec
	repoLatency *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		rpcTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "playhub_library_rpc_total",
			Help: "Handled RPCs by method and status code.",
		}, []string{"method", "code"}),
		rpcLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "playhub_library_rpc_duration_seconds",
			Help:    "RPC handling latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		repoTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "playhub_library_repository_calls_total",
			Help: "Repository calls by operation and outcome.",
		}, []string{"op", "outcome"}),
		repoLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "playhub_library_repository_duration_seconds",
			Help:    "Repository call latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}

	reg.MustRegister(
		c.rpcTotal,
		c.rpcLatency,
		c.repoTotal,
		c.repoLatency,
	)

	return c
}

// RecordRPC counts one handled RPC and observes its latency.
func (c *Collector) RecordRPC(method, code string, duration time.Duration) {
	c.rpcTotal.WithLabelValues(method, code).Inc()
	c.rpcLatency.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordRepositoryCall counts one repository call and observes its latency.
func (c *Collector) RecordRepositoryCall(op string, duration time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.repoTotal.WithLabelValues(op, outcome).Inc()
	c.repoLatency.WithLabelValues(op).Observe(duration.Seconds())
}

type nopCollector struct{}

func (nopCollector) RecordRPC(string, string, time.Duration)           {}
func (nopCollector) RecordRepositoryCall(string, time.Duration, error) {}

// Nop returns a MetricsCollector that discards everything.
func Nop() MetricsCollector { return nopCollector{} }

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute returns a mux serving Handler on /metrics.
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}
