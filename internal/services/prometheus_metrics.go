package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	importsTotal              *prometheus.CounterVec
	importDuration            prometheus.Histogram
	importRowsImported        prometheus.Gauge
	scoringDuration           prometheus.Histogram
	scoredPopulation          prometheus.Gauge
	datasetRegenerationsTotal prometheus.Counter
	datasetDuration           prometheus.Histogram
	datasetLines              prometheus.Gauge
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		importsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "csv_imports_total",
				Help: "Total number of CSV import runs",
			},
			[]string{"status"},
		),
		importDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "csv_import_duration_milliseconds",
				Help:    "CSV import duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		importRowsImported: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "csv_import_rows_imported",
				Help: "Rows imported by the most recent CSV import",
			},
		),
		scoringDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "segmentation_scoring_duration_milliseconds",
				Help:    "Customer scoring pipeline duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		scoredPopulation: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "segmentation_population",
				Help: "Number of customers scored by the most recent pipeline run",
			},
		),
		datasetRegenerationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dataset_regenerations_total",
				Help: "Total number of development dataset regenerations",
			},
		),
		datasetDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dataset_generation_duration_milliseconds",
				Help:    "Development dataset generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		datasetLines: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "dataset_lines",
				Help: "Ledger lines inserted by the most recent regeneration",
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "import.completed":
		m.importsTotal.WithLabelValues("completed").Inc()
	case "import.failed":
		reason := tags["reason"]
		if reason == "" {
			reason = "unknown"
		}
		m.importsTotal.WithLabelValues("failed_" + reason).Inc()
	case "dataset_regenerated":
		m.datasetRegenerationsTotal.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "import.duration":
		m.importDuration.Observe(float64(duration.Milliseconds()))
	case "segmentation.scoring":
		m.scoringDuration.Observe(float64(duration.Milliseconds()))
	case "dataset.generation":
		m.datasetDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "import.rows.imported":
		m.importRowsImported.Set(value)
	case "segmentation.population":
		m.scoredPopulation.Set(value)
	case "dataset.lines":
		m.datasetLines.Set(value)
	}
}
