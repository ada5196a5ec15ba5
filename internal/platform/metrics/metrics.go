// Package metrics holds the Prometheus collectors for the service
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every collector
const Namespace = "seekdomains"

// Registrar call outcomes
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics bundles the pipeline and http collectors
// a nil *Metrics is valid and records nothing
type Metrics struct {
	reg *prometheus.Registry

	GeneratedNames   prometheus.Counter
	AvailableDomains prometheus.Counter
	StoredDomains    prometheus.Counter
	RegistrarCalls   *prometheus.CounterVec
	Generation       prometheus.Histogram

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry, plus the go and process collectors
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)
	m := &Metrics{reg: reg}

	m.GeneratedNames = f.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "generated_names_total",
		Help:      "Candidate names returned by the language model",
	})
	m.AvailableDomains = f.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "available_domains_total",
		Help:      "Candidates the registrar reported as available",
	})
	m.StoredDomains = f.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "stored_domains_total",
		Help:      "Available domains newly persisted (duplicates excluded)",
	})
	m.RegistrarCalls = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "registrar_calls_total",
		Help:      "Registrar bulk check calls by provider and outcome",
	}, []string{"provider", "outcome"})
	m.Generation = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "generation_seconds",
		Help:      "Latency of one language model generation call",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
	})

	m.HTTPRequests = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route pattern and status",
	}, []string{"method", "route", "status"})
	m.HTTPDuration = f.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route pattern",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	return m
}

// Registry exposes the underlying registry for tests and extra collectors
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.reg
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveHTTP matches middleware.AccessLogOptions.Observe
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveGeneration records one model call and how many names it produced
func (m *Metrics) ObserveGeneration(elapsed time.Duration, names int) {
	if m == nil {
		return
	}
	m.Generation.Observe(elapsed.Seconds())
	m.GeneratedNames.Add(float64(names))
}

// ObserveRegistrarCall records one bulk check call
func (m *Metrics) ObserveRegistrarCall(provider string, err error, available int) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.RegistrarCalls.WithLabelValues(provider, outcome).Inc()
	m.AvailableDomains.Add(float64(available))
}

// ObserveStored records rows actually inserted by the result store
func (m *Metrics) ObserveStored(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.StoredDomains.Add(float64(n))
}
