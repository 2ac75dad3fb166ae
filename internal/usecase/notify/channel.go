// Package notify provides use cases for dispatching notifications across multiple channels.
// It implements business logic for announcing newly ingested articles to various
// delivery channels (Discord webhooks, Kafka topics) with circuit breakers,
// a bounded worker pool, and observability.
package notify

import (
	"context"

	"github.com/maviles7/dailydose/internal/domain/entity"
)

// Channel represents a notification delivery channel (Discord, Kafka, etc.).
// Each channel implementation handles its own rate limiting, retries, and
// error handling.
//
// Thread Safety:
//   - All methods must be safe for concurrent use by multiple goroutines
//
// Context Handling:
//   - Implementations must respect context cancellation and timeout
type Channel interface {
	// Name returns the channel identifier (lowercase, alphanumeric).
	// This is used for logging, metrics, and health check endpoints.
	Name() string

	// IsEnabled returns true if this channel is enabled via configuration.
	// Disabled channels are skipped during notification dispatching.
	IsEnabled() bool

	// Send sends a notification about a new article to this channel.
	//
	// Returns:
	//   - ErrChannelDisabled: if Send() is called on a disabled channel
	//   - ErrInvalidArticle: if article is nil or missing required fields
	//   - ErrInvalidSource: if source is nil
	//   - Network/API errors: wrapped with context
	Send(ctx context.Context, article *entity.Article, source *entity.Source) error
}
