package notify

import (
	"context"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/infra/notifier"
)

// DiscordChannel implements the Channel interface for Discord notifications.
// It wraps the DiscordNotifier from the infrastructure layer to provide the
// Channel abstraction for the notification use case.
type DiscordChannel struct {
	notifier notifier.Notifier
	enabled  bool
}

// NewDiscordChannel creates a new Discord channel with the specified configuration.
//
// If Discord notifications are disabled, a NoOpNotifier is used instead so the
// Channel interface contract is always satisfied.
func NewDiscordChannel(config notifier.DiscordConfig) *DiscordChannel {
	var n notifier.Notifier
	if config.Enabled {
		n = notifier.NewDiscordNotifier(config)
	} else {
		n = notifier.NewNoOpNotifier()
	}

	return &DiscordChannel{
		notifier: n,
		enabled:  config.Enabled,
	}
}

// Name returns the channel identifier "discord".
func (c *DiscordChannel) Name() string {
	return "discord"
}

// IsEnabled returns whether Discord notifications are enabled via configuration.
func (c *DiscordChannel) IsEnabled() bool {
	return c.enabled
}

// Send sends a notification about a new article to Discord.
// The underlying notifier handles rate limiting and retries.
func (c *DiscordChannel) Send(ctx context.Context, article *entity.Article, source *entity.Source) error {
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
