package notifier

import (
	"context"

	"github.com/maviles7/dailydose/internal/domain/entity"
)

// NoOpNotifier is a no-operation implementation of the Notifier interface.
// It is used when notifications are disabled to avoid nil checks in the code.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a new NoOpNotifier instance.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// NotifyArticle does nothing and returns nil immediately.
func (n *NoOpNotifier) NotifyArticle(ctx context.Context, article *entity.Article, source *entity.Source) error {
	return nil
}
