// Package worker holds the infrastructure of the scheduled ingestion
// process: its configuration, health endpoints, and metrics.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/maviles7/dailydose/pkg/config"

	"github.com/robfig/cron/v3"
)

// Config controls the ingestion worker: when it runs, how long a run may
// take, and where its health server listens.
type Config struct {
	// CronSchedule is a standard 5-field cron expression.
	CronSchedule string

	// Timezone is the IANA timezone the schedule is evaluated in.
	Timezone string

	// IngestTimeout bounds a single ingestion run.
	IngestTimeout time.Duration

	// HealthPort is the port of the worker's health check server.
	HealthPort int
}

// DefaultConfig returns the production defaults: a run every 30 minutes,
// UTC scheduling, and a 10 minute per-run budget.
func DefaultConfig() Config {
	return Config{
		CronSchedule:  "*/30 * * * *",
		Timezone:      "UTC",
		IngestTimeout: 10 * time.Minute,
		HealthPort:    9091,
	}
}

// Validate checks every field and aggregates the failures.
func (c *Config) Validate() error {
	var errs []error

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidateDurationRange(c.IngestTimeout, time.Minute, 4*time.Hour); err != nil {
		errs = append(errs, fmt.Errorf("ingest timeout: %w", err))
	}
	if c.HealthPort < 1024 || c.HealthPort > 65535 {
		errs = append(errs, fmt.Errorf("health port: %d out of range 1024-65535", c.HealthPort))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv builds the worker config from environment variables.
// Loading is fail-open: a value that does not validate is replaced by its
// default with a warning and a metric, so a typo in one variable cannot
// keep the worker down.
//
// Environment variables:
//   - INGEST_CRON: cron expression (default "*/30 * * * *")
//   - WORKER_TIMEZONE: IANA timezone (default "UTC")
//   - INGEST_TIMEOUT: duration between 1m and 4h (default "10m")
//   - WORKER_HEALTH_PORT: port 1024-65535 (default 9091)
func LoadConfigFromEnv(logger *slog.Logger, metrics *Metrics) Config {
	defaults := DefaultConfig()
	cfg := Config{
		CronSchedule:  config.GetEnvString("INGEST_CRON", defaults.CronSchedule),
		Timezone:      config.GetEnvString("WORKER_TIMEZONE", defaults.Timezone),
		IngestTimeout: config.GetEnvDuration("INGEST_TIMEOUT", defaults.IngestTimeout),
		HealthPort:    config.GetEnvInt("WORKER_HEALTH_PORT", defaults.HealthPort),
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(cfg.CronSchedule); err != nil {
		logger.Warn("invalid INGEST_CRON, using default",
			slog.String("value", cfg.CronSchedule),
			slog.String("default", defaults.CronSchedule),
			slog.Any("error", err))
		metrics.RecordConfigFallback("cron_schedule")
		cfg.CronSchedule = defaults.CronSchedule
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		logger.Warn("invalid WORKER_TIMEZONE, using default",
			slog.String("value", cfg.Timezone),
			slog.String("default", defaults.Timezone),
			slog.Any("error", err))
		metrics.RecordConfigFallback("timezone")
		cfg.Timezone = defaults.Timezone
	}
	if err := config.ValidateDurationRange(cfg.IngestTimeout, time.Minute, 4*time.Hour); err != nil {
		logger.Warn("invalid INGEST_TIMEOUT, using default",
			slog.Duration("value", cfg.IngestTimeout),
			slog.Duration("default", defaults.IngestTimeout),
			slog.Any("error", err))
		metrics.RecordConfigFallback("ingest_timeout")
		cfg.IngestTimeout = defaults.IngestTimeout
	}
	if cfg.HealthPort < 1024 || cfg.HealthPort > 65535 {
		logger.Warn("invalid WORKER_HEALTH_PORT, using default",
			slog.Int("value", cfg.HealthPort),
			slog.Int("default", defaults.HealthPort))
		metrics.RecordConfigFallback("health_port")
		cfg.HealthPort = defaults.HealthPort
	}

	return cfg
}
