package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/maviles7/dailydose/internal/handler/http/respond"
	pgRepo "github.com/maviles7/dailydose/internal/infra/adapter/persistence/postgres"
	"github.com/maviles7/dailydose/internal/infra/db"
	"github.com/maviles7/dailydose/internal/infra/fetcher"
	"github.com/maviles7/dailydose/internal/infra/newsapi"
	"github.com/maviles7/dailydose/internal/infra/notifier"
	workerPkg "github.com/maviles7/dailydose/internal/infra/worker"
	"github.com/maviles7/dailydose/internal/observability/logging"
	ingUC "github.com/maviles7/dailydose/internal/usecase/ingest"
	"github.com/maviles7/dailydose/internal/usecase/notify"
	"github.com/maviles7/dailydose/pkg/config"
)

// waitForMigrations blocks until the schema is present. The api binary owns
// migrations, so a fresh deployment may race the worker for a few seconds.
func waitForMigrations(logger *slog.Logger, database *sql.DB) {
	const probe = "SELECT 1 FROM sources LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := database.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

func main() {
	logger := logging.NewLogger()
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workerMetrics := workerPkg.NewMetrics()
	workerConfig := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("ingest_timeout", workerConfig.IngestTimeout),
		slog.Int("health_port", workerConfig.HealthPort))

	notifyService := buildNotifyService(logger)
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := notifyService.Shutdown(shutdownCtx); err != nil {
			logger.Warn("notification service shutdown incomplete", slog.Any("error", err))
		}
	}()

	startMetricsServer(ctx, logger, notifyService)

	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()
	logger.Info("health check server started", slog.String("addr", healthAddr))

	svc := setupIngestService(logger, database, notifyService)
	startCronWorker(ctx, logger, svc, workerConfig, workerMetrics, healthServer)
}

// initDatabase opens the connection pool and waits for migrations to complete.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	waitForMigrations(logger, database)
	return database
}

// setupIngestService wires the ingestion pipeline with all dependencies.
func setupIngestService(logger *slog.Logger, database *sql.DB, notifyService notify.Service) *ingUC.Service {
	apiCfg, err := newsapi.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load news API configuration", slog.Any("error", err))
		os.Exit(1)
	}
	client := newsapi.NewClient(apiCfg)

	contentCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load content fetch configuration", slog.Any("error", err))
		logger.Warn("content fetching disabled due to configuration error")
		contentCfg = fetcher.DefaultConfig()
		contentCfg.Enabled = false
	}

	var contentFetcher ingUC.ContentFetcher
	if contentCfg.Enabled {
		contentFetcher = fetcher.NewReadabilityFetcher(contentCfg)
		logger.Info("content fetching enabled",
			slog.Int("threshold", contentCfg.Threshold),
			slog.Int("parallelism", contentCfg.Parallelism),
			slog.Duration("timeout", contentCfg.Timeout))
	} else {
		logger.Info("content fetching disabled")
	}

	return ingUC.NewService(
		pgRepo.NewSourceRepo(database),
		pgRepo.NewArticleRepo(database),
		client,
		contentFetcher,
		notifyService,
		ingUC.ContentConfig{
			Enabled:     contentCfg.Enabled,
			Threshold:   contentCfg.Threshold,
			Parallelism: contentCfg.Parallelism,
		},
	)
}

// buildNotifyService assembles the enabled notification channels.
func buildNotifyService(logger *slog.Logger) notify.Service {
	var channels []notify.Channel

	discordConfig := loadDiscordConfig(logger)
	if discordConfig.Enabled {
		channels = append(channels, notify.NewDiscordChannel(discordConfig))
		logger.Info("discord channel initialized")
	} else {
		logger.Info("discord channel disabled")
	}

	if config.GetEnvBool("KAFKA_ENABLED", false) {
		channels = append(channels, notify.NewKafkaChannel(notifier.KafkaConfig{
			Enabled:      true,
			Brokers:      config.GetEnvStringList("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:        config.GetEnvString("KAFKA_TOPIC", "dailydose.articles.new"),
			WriteTimeout: config.GetEnvDuration("KAFKA_WRITE_TIMEOUT", 10*time.Second),
		}))
		logger.Info("kafka channel initialized")
	} else {
		logger.Info("kafka channel disabled")
	}

	maxConcurrent := config.GetEnvInt("NOTIFY_MAX_CONCURRENT", 10)
	svc := notify.NewService(channels, maxConcurrent)
	logger.Info("notification service initialized",
		slog.Int("channels", len(channels)),
		slog.Int("max_concurrent", maxConcurrent))
	return svc
}

// loadDiscordConfig reads Discord settings from the environment. An invalid
// webhook URL disables the channel rather than failing startup.
func loadDiscordConfig(logger *slog.Logger) notifier.DiscordConfig {
	if !config.GetEnvBool("DISCORD_ENABLED", false) {
		return notifier.DiscordConfig{Enabled: false}
	}

	webhookURL := os.Getenv("DISCORD_WEBHOOK_URL")
	if webhookURL == "" {
		logger.Warn("Discord webhook URL is empty, disabling notifications")
		return notifier.DiscordConfig{Enabled: false}
	}

	u, err := url.Parse(webhookURL)
	if err != nil {
		logger.Warn("invalid Discord webhook URL format, disabling notifications", slog.Any("error", err))
		return notifier.DiscordConfig{Enabled: false}
	}
	if u.Scheme != "https" || u.Host != "discord.com" || !strings.HasPrefix(u.Path, "/api/webhooks/") {
		logger.Warn("Discord webhook URL is not a discord.com webhook, disabling notifications")
		return notifier.DiscordConfig{Enabled: false}
	}

	return notifier.DiscordConfig{
		Enabled:    true,
		WebhookURL: webhookURL,
		Timeout:    config.GetEnvDuration("DISCORD_TIMEOUT", 30*time.Second),
	}
}

// startCronWorker schedules the ingestion job and blocks until a shutdown
// signal arrives.
func startCronWorker(ctx context.Context, logger *slog.Logger, svc *ingUC.Service, cfg workerPkg.Config, metrics *workerPkg.Metrics, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		runIngestJob(logger, svc, cfg, metrics)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}
	logger.Info("shutting down worker")

	healthServer.SetReady(false)
	stopCtx := c.Stop()
	<-stopCtx.Done()
	logger.Info("worker stopped")
}

// runIngestJob executes a single ingestion run with timeout and metrics.
func runIngestJob(logger *slog.Logger, svc *ingUC.Service, cfg workerPkg.Config, metrics *workerPkg.Metrics) {
	startTime := time.Now()
	metrics.RecordJobRun("started")
	logger.Info("ingestion started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.IngestTimeout)
	defer cancel()

	stats, err := svc.Run(ctx)
	if err != nil {
		logger.Error("ingestion failed", slog.String("error", respond.SanitizeError(err)))
		metrics.RecordJobRun("failure")
		metrics.RecordJobDuration(time.Since(startTime).Seconds())
		return
	}

	metrics.RecordJobRun("success")
	metrics.RecordJobDuration(time.Since(startTime).Seconds())
	metrics.RecordArticlesProcessed(stats.Fetched)
	metrics.RecordLastSuccess()

	logger.Info("ingestion completed",
		slog.Int("fetched", stats.Fetched),
		slog.Int64("ingested", stats.Ingested),
		slog.Int64("updated", stats.Updated),
		slog.Int64("skipped", stats.Skipped),
		slog.Int64("errors", stats.Errors),
		slog.Duration("duration", stats.Duration),
	)
}
