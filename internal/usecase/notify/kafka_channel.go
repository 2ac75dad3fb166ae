package notify

import (
	"context"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/infra/notifier"
)

// KafkaChannel implements the Channel interface for Kafka event publishing.
// Downstream consumers (search indexers, push services) subscribe to the
// new-article topic instead of polling the database.
type KafkaChannel struct {
	notifier notifier.Notifier
	enabled  bool
}

// NewKafkaChannel creates a new Kafka channel with the specified configuration.
func NewKafkaChannel(config notifier.KafkaConfig) *KafkaChannel {
	var n notifier.Notifier
	if config.Enabled {
		n = notifier.NewKafkaNotifier(config)
	} else {
		n = notifier.NewNoOpNotifier()
	}

	return &KafkaChannel{
		notifier: n,
		enabled:  config.Enabled,
	}
}

// Name returns the channel identifier "kafka".
func (c *KafkaChannel) Name() string {
	return "kafka"
}

// IsEnabled returns whether Kafka event publishing is enabled via configuration.
func (c *KafkaChannel) IsEnabled() bool {
	return c.enabled
}

// Send publishes a new-article event to the configured Kafka topic.
func (c *KafkaChannel) Send(ctx context.Context, article *entity.Article, source *entity.Source) error {
	if !c.enabled {
		return ErrChannelDisabled
	}
	if article == nil || article.Title == "" || article.URL == "" {
		return ErrInvalidArticle
	}
	if source == nil {
		return ErrInvalidSource
	}

	return c.notifier.NotifyArticle(ctx, article, source)
}
