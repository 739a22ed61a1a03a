// Package metrics exposes Prometheus instrumentation for the planning service.
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

const namespace = "strategic_planning"

// Metrics implements adapter.PlanningMetrics and records HTTP request durations.
type Metrics struct {
	registry         *prometheus.Registry
	aggregations     prometheus.Counter
	aggregationTime  prometheus.Histogram
	objectives       prometheus.Histogram
	projections      prometheus.Counter
	projectedRows    prometheus.Histogram
	weightViolations *prometheus.CounterVec
	summaryCache     *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		aggregations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregations_total",
			Help:      "Plan hierarchies aggregated.",
		}),
		aggregationTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_duration_seconds",
			Help:      "Time spent aggregating a plan hierarchy.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		objectives: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_objectives",
			Help:      "Objectives per aggregated plan.",
			Buckets:   prometheus.LinearBuckets(1, 2, 10),
		}),
		projections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projections_total",
			Help:      "Plan reports projected.",
		}),
		projectedRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "projection_rows",
			Help:      "Rows per projected plan report.",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 10),
		}),
		weightViolations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weight_violations_total",
			Help:      "Weight checks that exceeded their target, by level.",
		}, []string{"level"}),
		summaryCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summary_cache_lookups_total",
			Help:      "Plan summary cache lookups, by result.",
		}, []string{"result"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.aggregations,
		m.aggregationTime,
		m.objectives,
		m.projections,
		m.projectedRows,
		m.weightViolations,
		m.summaryCache,
		m.requestDuration,
	)

	return m
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveAggregation records one aggregation and how long it took.
func (m *Metrics) ObserveAggregation(duration time.Duration, objectives int) {
	m.aggregations.Inc()
	m.aggregationTime.Observe(duration.Seconds())
	m.objectives.Observe(float64(objectives))
}

// ObserveProjection records one report projection and its row count.
func (m *Metrics) ObserveProjection(rows int) {
	m.projections.Inc()
	m.projectedRows.Observe(float64(rows))
}

// ObserveWeightViolation records a weight check that failed at the given level.
func (m *Metrics) ObserveWeightViolation(level string) {
	m.weightViolations.WithLabelValues(level).Inc()
}

// ObserveSummaryCache records a summary cache lookup.
func (m *Metrics) ObserveSummaryCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.summaryCache.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records the duration of every request under its route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
