// Package metrics exposes Prometheus counters for HTTP traffic and for the
// directory's business events.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Business event actions.
const (
	ActionContact    = "contact_submission"
	ActionLead       = "business_lead"
	ActionLogoUpload = "logo_upload"
	ActionLogin      = "admin_login"
)

// Outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeStoreFailed  = "store_failed"
	OutcomeEmailFailed  = "email_failed"
	OutcomeInvalid      = "invalid"
	OutcomeUploadFailed = "upload_failed"
	OutcomeDenied       = "denied"
)

// Metrics owns a private registry so tests can create as many as they like.
type Metrics struct {
	registry       *prometheus.Registry
	requests       *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	businessEvents *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		businessEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "business_events_total",
			Help: "Business event counts by action and outcome",
		}, []string{"action", "outcome"}),
	}
	reg.MustRegister(
		m.requests,
		m.latency,
		m.businessEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordEvent counts one business event.
func (m *Metrics) RecordEvent(action, outcome string) {
	m.businessEvents.WithLabelValues(action, outcome).Inc()
}

// Middleware records request counts and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
