package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maviles7/dailydose/internal/usecase/notify"
	"github.com/maviles7/dailydose/pkg/config"
)

// channelHealthResponse reports the state of all notification channels.
type channelHealthResponse struct {
	Healthy  bool            `json:"healthy"`
	Channels []channelStatus `json:"channels"`
}

type channelStatus struct {
	Name               string `json:"name"`
	Enabled            bool   `json:"enabled"`
	CircuitBreakerOpen bool   `json:"circuit_breaker_open"`
}

// startMetricsServer starts the Prometheus metrics server in the background.
// It exposes /metrics for scraping and /health/channels for per-channel
// circuit breaker state, and shuts down when ctx is canceled.
func startMetricsServer(ctx context.Context, logger *slog.Logger, notifyService notify.Service) *http.Server {
	port := config.GetEnvInt("METRICS_PORT", 9090)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health/channels", channelHealthHandler(notifyService))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("metrics server starting", slog.Int("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", slog.Any("error", err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", slog.Any("error", err))
		} else {
			logger.Info("metrics server stopped")
		}
	}()

	return server
}

// channelHealthHandler reports 200 when every enabled channel has a closed
// circuit breaker, 503 otherwise.
func channelHealthHandler(notifyService notify.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := notifyService.GetChannelHealth()

		channels := make([]channelStatus, 0, len(statuses))
		healthy := true
		for _, status := range statuses {
			channels = append(channels, channelStatus{
				Name:               status.Name,
				Enabled:            status.Enabled,
				CircuitBreakerOpen: status.CircuitBreakerOpen,
			})
			if status.Enabled && status.CircuitBreakerOpen {
				healthy = false
			}
		}

		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(channelHealthResponse{
			Healthy:  healthy,
			Channels: channels,
		})
	}
}
