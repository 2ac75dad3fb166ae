package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes Prometheus instrumentation for the scheduled worker.
type Metrics struct {
	// JobRunsTotal counts ingestion job runs by status (success or failure).
	JobRunsTotal *prometheus.CounterVec

	// JobDurationSeconds tracks how long an ingestion run takes.
	JobDurationSeconds prometheus.Histogram

	// JobArticlesProcessedTotal counts headlines processed across all runs.
	JobArticlesProcessedTotal prometheus.Counter

	// JobLastSuccessTimestamp is the Unix time of the last successful run.
	JobLastSuccessTimestamp prometheus.Gauge

	// ConfigFallbacksTotal counts configuration values replaced by defaults.
	ConfigFallbacksTotal *prometheus.CounterVec
}

// NewMetrics creates and registers the worker metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		JobRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_ingest_job_runs_total",
			Help: "Total ingestion job runs by status",
		}, []string{"status"}),

		JobDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_ingest_job_duration_seconds",
			Help:    "Duration of ingestion job runs in seconds",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800},
		}),

		JobArticlesProcessedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_ingest_job_articles_processed_total",
			Help: "Total headlines processed across all ingestion runs",
		}),

		JobLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_ingest_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful ingestion run",
		}),

		ConfigFallbacksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_config_fallbacks_total",
			Help: "Configuration values replaced by defaults, by field",
		}, []string{"field"}),
	}
}

// RecordJobRun increments the run counter with status "success" or "failure".
func (m *Metrics) RecordJobRun(status string) {
	m.JobRunsTotal.WithLabelValues(status).Inc()
}

// RecordJobDuration observes the duration of one run in seconds.
func (m *Metrics) RecordJobDuration(seconds float64) {
	m.JobDurationSeconds.Observe(seconds)
}

// RecordArticlesProcessed adds the number of headlines handled by one run.
func (m *Metrics) RecordArticlesProcessed(count int) {
	m.JobArticlesProcessedTotal.Add(float64(count))
}

// RecordLastSuccess stamps the last successful run at the current time.
func (m *Metrics) RecordLastSuccess() {
	m.JobLastSuccessTimestamp.SetToCurrentTime()
}

// RecordConfigFallback notes that a config field fell back to its default.
func (m *Metrics) RecordConfigFallback(field string) {
	m.ConfigFallbacksTotal.WithLabelValues(field).Inc()
}
