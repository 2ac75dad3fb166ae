package notify

import "errors"

// Sentinel errors for notify use case operations.
var (
	// ErrChannelDisabled indicates that Send() was called on a disabled channel.
	ErrChannelDisabled = errors.New("channel is disabled")

	// ErrInvalidArticle indicates that the article data is invalid or missing
	// required fields (nil article, empty title or URL).
	ErrInvalidArticle = errors.New("invalid article data")

	// ErrInvalidSource indicates that the source data is invalid or nil.
	ErrInvalidSource = errors.New("invalid source data")

	// ErrNotificationDropped indicates that a notification was dropped due to
	// goroutine pool saturation or timeout waiting for a worker slot.
	ErrNotificationDropped = errors.New("notification dropped due to pool saturation")
)
