package notify

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/resilience/circuitbreaker"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const requestIDKey contextKey = "request_id"

const (
	workerPoolTimeout   = 5 * time.Second  // Timeout for acquiring worker slot
	notificationTimeout = 30 * time.Second // Timeout for individual notification
)

// Service handles notification dispatching to multiple channels.
// It orchestrates sending notifications asynchronously without blocking
// the caller.
type Service interface {
	// NotifyNewArticle dispatches a notification about a newly ingested article
	// to all enabled notification channels.
	//
	// This method is non-blocking and returns immediately. Notifications
	// are sent in background goroutines, and failures are logged but do
	// not propagate errors to the caller.
	NotifyNewArticle(ctx context.Context, article *entity.Article, source *entity.Source) error

	// GetChannelHealth returns the health status of all notification channels,
	// including per-channel circuit breaker states. Safe for concurrent use.
	GetChannelHealth() []ChannelHealthStatus

	// Shutdown gracefully stops the notification service, waiting for
	// in-flight notifications to complete or the context to expire.
	Shutdown(ctx context.Context) error
}

// ChannelHealthStatus represents the health status of a notification channel.
type ChannelHealthStatus struct {
	Name               string // Channel name (e.g., "discord", "kafka")
	Enabled            bool   // Whether the channel is enabled
	CircuitBreakerOpen bool   // Whether the circuit breaker is currently open
}

// service is the concrete implementation of Service interface.
type service struct {
	channels       []Channel
	breakers       map[string]*circuitbreaker.CircuitBreaker
	workerPool     chan struct{} // Semaphore for limiting concurrent notifications
	wg             sync.WaitGroup
	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

// NewService creates a new notification service with the given channels.
// Each channel gets its own circuit breaker so one dead endpoint cannot
// starve the others.
//
// maxConcurrent bounds concurrent notification goroutines (recommended: 10-20).
func NewService(channels []Channel, maxConcurrent int) Service {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	svc := &service{
		channels:       channels,
		breakers:       make(map[string]*circuitbreaker.CircuitBreaker),
		workerPool:     make(chan struct{}, maxConcurrent),
		shutdownCtx:    shutdownCtx,
		shutdownCancel: shutdownCancel,
	}

	for _, ch := range channels {
		svc.breakers[ch.Name()] = circuitbreaker.New(circuitbreaker.NotifierConfig(ch.Name()))
	}

	return svc
}

// NotifyNewArticle implements Service.NotifyNewArticle.
func (s *service) NotifyNewArticle(ctx context.Context, article *entity.Article, source *entity.Source) error {
	if article == nil || source == nil {
		slog.Warn("Invalid notification input",
			slog.Bool("nil_article", article == nil),
			slog.Bool("nil_source", source == nil))
		return nil
	}

	// Generate unique request ID for tracing, inheriting from the parent
	// context where present.
	requestID, ok := ctx.Value(requestIDKey).(string)
	if !ok || requestID == "" {
		requestID = uuid.New().String()
	}

	enabledCount := 0
	for _, ch := range s.channels {
		if ch.IsEnabled() {
			enabledCount++
		}
	}
	SetChannelsEnabled(float64(enabledCount))

	if enabledCount == 0 {
		slog.Debug("No notification channels enabled",
			slog.String("request_id", requestID),
			slog.Int64("article_id", article.ID))
		return nil
	}

	slog.Info("Dispatching article notification",
		slog.String("request_id", requestID),
		slog.Int64("article_id", article.ID),
		slog.String("url", article.URL),
		slog.Int("enabled_channels", enabledCount))

	for _, ch := range s.channels {
		if ch.IsEnabled() {
			channel := ch
			s.wg.Add(1)
			go s.notifyChannel(requestID, channel, article, source)
		}
	}

	return nil
}

// notifyChannel sends notification to a single channel in a goroutine.
func (s *service) notifyChannel(requestID string, channel Channel, article *entity.Article, source *entity.Source) {
	defer s.wg.Done()

	IncrementActiveGoroutines()
	defer DecrementActiveGoroutines()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic in notification channel",
				slog.String("request_id", requestID),
				slog.String("channel", channel.Name()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	// Acquire worker slot with timeout so a saturated pool drops rather
	// than blocks.
	select {
	case s.workerPool <- struct{}{}:
		defer func() { <-s.workerPool }()
	case <-time.After(workerPoolTimeout):
		slog.Warn("Notification dropped: worker pool full",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()))
		RecordDropped(channel.Name(), "pool_full")
		return
	}

	cb := s.breakers[channel.Name()]
	if cb.IsOpen() {
		slog.Warn("Channel temporarily disabled by circuit breaker",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()))
		RecordDropped(channel.Name(), "circuit_open")
		return
	}

	ctx, cancel := context.WithTimeout(s.shutdownCtx, notificationTimeout)
	defer cancel()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	startTime := time.Now()
	RecordDispatch(channel.Name())

	_, err := cb.Execute(func() (interface{}, error) {
		return nil, channel.Send(ctx, article, source)
	})
	duration := time.Since(startTime)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			RecordDropped(channel.Name(), "circuit_open")
		} else {
			RecordFailure(channel.Name(), duration)
		}
		slog.Warn("Channel notification failed",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()),
			slog.Int64("article_id", article.ID),
			slog.String("url", article.URL),
			slog.Duration("send_duration", duration),
			slog.Any("error", err))
		return
	}

	RecordSuccess(channel.Name(), duration)
	slog.Info("Channel notification sent successfully",
		slog.String("request_id", requestID),
		slog.String("channel", channel.Name()),
		slog.Int64("article_id", article.ID),
		slog.String("title", article.Title),
		slog.Duration("send_duration", duration))
}

// GetChannelHealth implements Service.GetChannelHealth.
func (s *service) GetChannelHealth() []ChannelHealthStatus {
	statuses := make([]ChannelHealthStatus, 0, len(s.channels))

	for _, ch := range s.channels {
		statuses = append(statuses, ChannelHealthStatus{
			Name:               ch.Name(),
			Enabled:            ch.IsEnabled(),
			CircuitBreakerOpen: s.breakers[ch.Name()].IsOpen(),
		})
	}

	return statuses
}

// Shutdown implements Service.Shutdown.
func (s *service) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down notification service")

	s.shutdownCancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Notification service shutdown complete")
		return nil
	case <-ctx.Done():
		slog.Warn("Notification service shutdown timeout")
		return ctx.Err()
	}
}
