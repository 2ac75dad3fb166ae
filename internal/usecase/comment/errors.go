// Package comment provides use cases for article comments: creation,
// listing, and author-only edit and delete.
package comment

import "errors"

// Sentinel errors for comment use case operations.
var (
	// ErrCommentNotFound indicates that the requested comment was not found.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrInvalidCommentID indicates that the provided comment ID is invalid.
	ErrInvalidCommentID = errors.New("invalid comment ID")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrArticleNotFound indicates that the target article does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrMissingUserID indicates that no authenticated user was supplied.
	ErrMissingUserID = errors.New("missing user ID")
)
