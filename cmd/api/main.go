package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/maviles7/dailydose/internal/common/pagination"
	appconfig "github.com/maviles7/dailydose/internal/config"
	pgRepo "github.com/maviles7/dailydose/internal/infra/adapter/persistence/postgres"
	"github.com/maviles7/dailydose/internal/infra/db"
	"github.com/maviles7/dailydose/internal/infra/fetcher"
	"github.com/maviles7/dailydose/internal/infra/newsapi"
	"github.com/maviles7/dailydose/internal/infra/notifier"
	"github.com/maviles7/dailydose/internal/observability/logging"
	"github.com/maviles7/dailydose/internal/observability/tracing"
	"github.com/maviles7/dailydose/pkg/config"

	"github.com/maviles7/dailydose/internal/domain/entity"
	artUC "github.com/maviles7/dailydose/internal/usecase/article"
	comUC "github.com/maviles7/dailydose/internal/usecase/comment"
	ingUC "github.com/maviles7/dailydose/internal/usecase/ingest"
	interUC "github.com/maviles7/dailydose/internal/usecase/interaction"
	"github.com/maviles7/dailydose/internal/usecase/notify"
	srcUC "github.com/maviles7/dailydose/internal/usecase/source"

	hhttp "github.com/maviles7/dailydose/internal/handler/http"
	harticle "github.com/maviles7/dailydose/internal/handler/http/article"
	hauth "github.com/maviles7/dailydose/internal/handler/http/auth"
	hcomment "github.com/maviles7/dailydose/internal/handler/http/comment"
	hingest "github.com/maviles7/dailydose/internal/handler/http/ingestrun"
	"github.com/maviles7/dailydose/internal/handler/http/requestid"
	hrelation "github.com/maviles7/dailydose/internal/handler/http/relation"
	hsource "github.com/maviles7/dailydose/internal/handler/http/source"
	authservice "github.com/maviles7/dailydose/internal/service/auth"

	_ "github.com/maviles7/dailydose/docs" // swagger docs
)

// @title           DailyDose API
// @version         1.0
// @description     News aggregation backend: ingests top headlines from an
// @description     upstream news API and serves articles, favorites,
// @description     bookmarks, and comments.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT authentication. Send "Bearer {token}" in the Authorization header.

func main() {
	logger := logging.NewLogger()
	validateStartupSecrets(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	notifySvc := buildNotifyService(logger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := notifySvc.Shutdown(shutdownCtx); err != nil {
			logger.Warn("notification service shutdown incomplete", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, database, notifySvc)
	runServer(logger, handler)
}

// validateStartupSecrets refuses to start with missing or weak credentials.
// The member account degrades gracefully instead.
func validateStartupSecrets(logger *slog.Logger) {
	if err := hauth.ValidateAdminCredentials(); err != nil {
		logger.Error("admin credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}
	hauth.ValidateMemberCredentials(logger)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
}

func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// buildNotifyService assembles the notification channels that are enabled
// by environment configuration. With none enabled the service is an empty
// fan-out and notifications are no-ops.
func buildNotifyService(logger *slog.Logger) notify.Service {
	var channels []notify.Channel

	if config.GetEnvBool("DISCORD_ENABLED", false) {
		channels = append(channels, notify.NewDiscordChannel(notifier.DiscordConfig{
			Enabled:    true,
			WebhookURL: os.Getenv("DISCORD_WEBHOOK_URL"),
			Timeout:    config.GetEnvDuration("DISCORD_TIMEOUT", 10*time.Second),
		}))
		logger.Info("discord notifications enabled")
	}
	if config.GetEnvBool("KAFKA_ENABLED", false) {
		channels = append(channels, notify.NewKafkaChannel(notifier.KafkaConfig{
			Enabled:      true,
			Brokers:      config.GetEnvStringList("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:        config.GetEnvString("KAFKA_TOPIC", "dailydose.articles.new"),
			WriteTimeout: config.GetEnvDuration("KAFKA_WRITE_TIMEOUT", 10*time.Second),
		}))
		logger.Info("kafka event publishing enabled")
	}

	maxConcurrent := config.GetEnvInt("NOTIFY_MAX_CONCURRENT", 10)
	return notify.NewService(channels, maxConcurrent)
}

// buildIngestService wires the full ingestion pipeline: upstream headline
// client, optional content fetcher, and notifications.
func buildIngestService(logger *slog.Logger, database *sql.DB, notifySvc notify.Service) *ingUC.Service {
	apiCfg, err := newsapi.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load news API configuration", slog.Any("error", err))
		os.Exit(1)
	}

	contentCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load content fetcher configuration", slog.Any("error", err))
		os.Exit(1)
	}
	var contentFetcher ingUC.ContentFetcher
	if contentCfg.Enabled {
		contentFetcher = fetcher.NewReadabilityFetcher(contentCfg)
		logger.Info("content enhancement enabled",
			slog.Int("threshold", contentCfg.Threshold),
			slog.Int("parallelism", contentCfg.Parallelism))
	}

	return ingUC.NewService(
		pgRepo.NewSourceRepo(database),
		pgRepo.NewArticleRepo(database),
		newsapi.NewClient(apiCfg),
		contentFetcher,
		notifySvc,
		ingUC.ContentConfig{
			Enabled:     contentCfg.Enabled,
			Threshold:   contentCfg.Threshold,
			Parallelism: contentCfg.Parallelism,
		},
	)
}

// setupServer builds the full HTTP handler: routes plus middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, notifySvc notify.Service) http.Handler {
	articleRepo := pgRepo.NewArticleRepo(database)
	commentRepo := pgRepo.NewCommentRepo(database)
	relationRepo := pgRepo.NewRelationRepo(database)
	sourceRepo := pgRepo.NewSourceRepo(database)

	artSvc := &artUC.Service{Repo: articleRepo, CommentRepo: commentRepo}
	srcSvc := &srcUC.Service{Repo: sourceRepo}
	comSvc := &comUC.Service{Repo: commentRepo, ArticleRepo: articleRepo}

	favorites, err := interUC.NewService(entity.RelationFavorite, relationRepo, articleRepo)
	if err != nil {
		logger.Error("failed to build favorites service", slog.Any("error", err))
		os.Exit(1)
	}
	bookmarks, err := interUC.NewService(entity.RelationBookmark, relationRepo, articleRepo)
	if err != nil {
		logger.Error("failed to build bookmarks service", slog.Any("error", err))
		os.Exit(1)
	}

	ingestSvc := buildIngestService(logger, database, notifySvc)

	// Auth policy: weak password list, public endpoints, and token lifetime
	// come from the security config file when present.
	secCfg := loadSecurityPolicy(logger)
	hauth.PublicEndpoints = secCfg.GetPublicEndpoints()
	authProvider := hauth.NewEnvProvider(secCfg.GetMinPasswordLength(), secCfg.GetWeakPasswords())
	authSvc := authservice.NewService(authProvider, secCfg.GetPublicEndpoints())
	tokenTTL := time.Duration(secCfg.GetJWTExpiryHours()) * time.Hour

	// Token issuing is the brute-force target, so it gets its own per-IP
	// limiter on top of whatever sits in front of the service.
	authLimiter := hhttp.NewRateLimiter(
		float64(config.GetEnvInt("AUTH_RATE_LIMIT_RPM", 5))/60.0,
		config.GetEnvInt("AUTH_RATE_LIMIT_BURST", 5),
	)

	publicMux := http.NewServeMux()
	publicMux.Handle("POST /auth/token", authLimiter.Limit(hauth.TokenHandler(authSvc, tokenTTL)))
	publicMux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version()})
	publicMux.Handle("/ready", hhttp.ReadinessHandler(database))
	publicMux.Handle("/live", hhttp.LivenessHandler())
	publicMux.Handle("/metrics", hhttp.MetricsHandler())
	publicMux.Handle("/swagger/", httpSwagger.WrapHandler)

	paginationCfg := pagination.LoadFromEnv()

	apiMux := http.NewServeMux()
	harticle.Register(apiMux, artSvc, paginationCfg, logger)
	hrelation.Register(apiMux, favorites, bookmarks)
	hcomment.Register(apiMux, comSvc)
	hsource.Register(apiMux, srcSvc)

	// The ingest trigger sits outside the request timeout: a full run can
	// legitimately take longer than an interactive request.
	privateMux := http.NewServeMux()
	requestTimeout := config.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second)
	privateMux.Handle("/", hhttp.Timeout(requestTimeout)(apiMux))
	hingest.Register(privateMux, ingestSvc, logger)

	protected := hauth.Authz(privateMux)

	rootMux := http.NewServeMux()
	rootMux.Handle("/auth/token", publicMux)
	rootMux.Handle("/health", publicMux)
	rootMux.Handle("/ready", publicMux)
	rootMux.Handle("/live", publicMux)
	rootMux.Handle("/metrics", publicMux)
	rootMux.Handle("/swagger/", publicMux)
	rootMux.Handle("/", protected)

	return applyMiddleware(logger, rootMux)
}

// applyMiddleware wraps the handler with the server-wide chain, innermost
// first: metrics, body limit, input validation, logging, recovery, tracing,
// request ID.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// loadSecurityPolicy reads the YAML security config, falling back to the
// built-in defaults when the file does not exist.
func loadSecurityPolicy(logger *slog.Logger) *appconfig.SecurityConfig {
	path := config.GetEnvString("SECURITY_CONFIG_PATH", "config/security.yaml")
	secCfg, err := appconfig.LoadSecurityConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("no security config file, using defaults", slog.String("path", path))
			return appconfig.DefaultSecurityConfig()
		}
		logger.Error("failed to load security config", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("security config loaded", slog.String("path", path))
	return secCfg
}

func version() string {
	return config.GetEnvString("VERSION", "dev")
}

// runServer starts the HTTP server and blocks until SIGINT or SIGTERM,
// then shuts down gracefully.
func runServer(logger *slog.Logger, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := config.GetEnvString("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
