package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "wordlexer"

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	sentenceTokens  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "count of handled requests",
			}, []string{"route", "code"}),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "request latency",
				Buckets:   prometheus.DefBuckets,
			}, []string{"route"}),
		sentenceTokens: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "lexer",
				Name:      "sentence_tokens",
				Help:      "number of tokens produced per sentence",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			}, []string{"splitter"}),
	}
	m.registry.MustRegister(m.requests, m.requestDuration, m.sentenceTokens)
	return m
}

// Handler serves the registered collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeRequest(route string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) observeTokens(splitter string, n int) {
	if m == nil {
		return
	}
	m.sentenceTokens.WithLabelValues(splitter).Observe(float64(n))
}
