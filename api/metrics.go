// Package api provides the network service surface: a TCP server speaking a
// length-prefixed Arrow IPC protocol, and Prometheus metrics for it.
package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the parse service.
// Each instance carries its own registry.
type Metrics struct {
	registry *prometheus.Registry

	// Parse metrics
	ParsesTotal   prometheus.Counter
	ParseFailures prometheus.Counter
	ParseLatency  prometheus.Histogram

	// Extraction metrics
	EventsExtracted    prometheus.Counter
	ParticlesExtracted prometheus.Counter

	// Payload metrics
	PayloadBytes prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with the given namespace.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		ParsesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parses_total",
			Help:      "Total number of parse requests",
		}),
		ParseFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_failures_total",
			Help:      "Total number of failed parse requests",
		}),
		ParseLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_latency_seconds",
			Help:      "Full two-pass parse latency in seconds",
			Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}),

		EventsExtracted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_extracted_total",
			Help:      "Total number of events extracted",
		}),
		ParticlesExtracted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "particles_extracted_total",
			Help:      "Total number of particle records extracted",
		}),

		PayloadBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "payload_bytes",
			Help:      "Size of incoming LHE payloads in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
		}),
	}
}

// RecordParse records a successful parse.
func (m *Metrics) RecordParse(events, particles int, payloadSize int, duration time.Duration) {
	m.ParsesTotal.Inc()
	m.ParseLatency.Observe(duration.Seconds())
	m.EventsExtracted.Add(float64(events))
	m.ParticlesExtracted.Add(float64(particles))
	m.PayloadBytes.Observe(float64(payloadSize))
}

// RecordFailure records a failed parse.
func (m *Metrics) RecordFailure() {
	m.ParsesTotal.Inc()
	m.ParseFailures.Inc()
}

// Handler returns an HTTP handler exposing this instance's metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// MetricsServer runs an HTTP server exposing /metrics endpoint.
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer creates a new metrics server on the given address.
func NewMetricsServer(addr string, metrics *Metrics) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return &MetricsServer{
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}
}

// Start starts the metrics server (blocking).
func (s *MetricsServer) Start() error {
	return s.server.ListenAndServe()
}

// StartAsync starts the metrics server in a goroutine.
func (s *MetricsServer) StartAsync() {
	go func() {
		_ = s.server.ListenAndServe()
	}()
}

// Stop gracefully stops the metrics server.
func (s *MetricsServer) Stop() error {
	return s.server.Close()
}
