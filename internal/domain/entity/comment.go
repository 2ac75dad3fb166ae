package entity

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxCommentLength is the upper bound for comment text, in runes.
const MaxCommentLength = 250

// Comment is a user-authored remark on an article. Comments are mutable and
// deletable, but only by their authoring user. Display order is newest-first.
type Comment struct {
	ID        int64
	ArticleID int64
	UserID    string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAuthor reports whether the given user authored this comment.
// Authorization is structural equality of user identifiers.
func (c *Comment) IsAuthor(userID string) bool {
	return c.UserID == userID
}

// ValidateCommentText checks that comment text is non-empty after trimming
// and does not exceed MaxCommentLength runes.
func ValidateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: "text", Message: "is required"}
	}
	if utf8.RuneCountInString(text) > MaxCommentLength {
		return &ValidationError{Field: "text", Message: "must not exceed 250 characters"}
	}
	return nil
}
