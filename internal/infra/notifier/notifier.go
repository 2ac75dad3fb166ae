// Package notifier provides abstraction for sending notifications about articles.
// It defines the Notifier interface which allows different notification mechanisms
// (Discord webhooks, Kafka topics, etc.) to be used interchangeably through
// dependency injection.
//
// The package includes implementations for Discord webhooks, Kafka event
// publishing, and a no-op notifier for when notifications are disabled.
package notifier

import (
	"context"

	"github.com/maviles7/dailydose/internal/domain/entity"
)

// Notifier is an interface for sending article notifications.
// Implementations should handle rate limiting, retries, and error logging internally.
type Notifier interface {
	// NotifyArticle sends a notification about a newly ingested article.
	// The notification should include article metadata (title, URL, description)
	// and the originating news source.
	//
	// Implementations should:
	//   - Generate a unique request ID for tracing
	//   - Apply rate limiting to prevent API abuse
	//   - Retry transient failures with exponential backoff
	//   - Respect context cancellation
	NotifyArticle(ctx context.Context, article *entity.Article, source *entity.Source) error
}
