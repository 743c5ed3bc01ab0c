// Package metrics exposes Prometheus collectors for post lifecycle events
// and request failures.
//
// Collectors are registered on a caller-supplied registry rather than the
// global default, so every Server (and every test) gets its own set.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blogposts"

// Metrics groups every collector the service updates.
type Metrics struct {
	registry *prometheus.Registry

	PostsCreated prometheus.Counter
	PostsUpdated prometheus.Counter
	PostsDeleted prometheus.Counter
	PostsStored  prometheus.Gauge

	// RequestsRejected counts failed post requests by reason
	// ("validation", "id_mismatch", "not_found", "rate_limited").
	RequestsRejected *prometheus.CounterVec

	// HandlerDuration observes handler execution time by route and outcome.
	HandlerDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		PostsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_created_total",
			Help:      "Number of posts created.",
		}),
		PostsUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_updated_total",
			Help:      "Number of posts updated.",
		}),
		PostsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_deleted_total",
			Help:      "Number of posts removed by delete requests.",
		}),
		PostsStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "posts_stored",
			Help:      "Number of posts currently held in memory.",
		}),
		RequestsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_rejected_total",
			Help:      "Number of rejected requests by reason.",
		}, []string{"reason"}),
		HandlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "handler_duration_seconds",
			Help:      "Handler execution time.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.PostsCreated,
		m.PostsUpdated,
		m.PostsDeleted,
		m.PostsStored,
		m.RequestsRejected,
		m.HandlerDuration,
	)

	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
