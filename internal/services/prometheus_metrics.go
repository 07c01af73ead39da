package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	detectionRuns     *prometheus.CounterVec
	detectionDuration prometheus.Histogram
	patternsDetected  *prometheus.CounterVec
	patternsResolved  *prometheus.CounterVec
	synthesisRuns     *prometheus.CounterVec
	synthesisDuration prometheus.Histogram
	pendingPatterns   prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		detectionRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pattern_detection_runs_total",
				Help: "Total number of pattern detection runs",
			},
			[]string{"status"},
		),
		detectionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pattern_detection_duration_milliseconds",
				Help:    "Pattern detection run duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		patternsDetected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "patterns_detected_total",
				Help: "Total number of recurring patterns detected",
			},
			[]string{"recurrence_type"},
		),
		patternsResolved: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "patterns_resolved_total",
				Help: "Total number of pattern approval decisions",
			},
			[]string{"status"},
		),
		synthesisRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_synthesis_runs_total",
				Help: "Total number of budget synthesis runs",
			},
			[]string{"status"},
		),
		synthesisDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_synthesis_duration_milliseconds",
				Help:    "Budget synthesis duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		pendingPatterns: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "patterns_pending",
				Help: "Number of patterns currently awaiting an approval decision",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "detection.run":
		if status != "" {
			m.detectionRuns.WithLabelValues(status).Inc()
		}
	case "detection.pattern":
		if recurrenceType := tags["recurrence_type"]; recurrenceType != "" {
			m.patternsDetected.WithLabelValues(recurrenceType).Inc()
		}
	case "pattern.resolved":
		if status != "" {
			m.patternsResolved.WithLabelValues(status).Inc()
		}
	case "budget.synthesis":
		if status != "" {
			m.synthesisRuns.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "detection.run":
		m.detectionDuration.Observe(float64(duration.Milliseconds()))
	case "budget.synthesis":
		m.synthesisDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "patterns.pending" {
		m.pendingPatterns.Set(value)
	}
}
