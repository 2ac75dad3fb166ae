// Package interaction provides the favorite and bookmark use cases.
// Both are the same join entity with a different kind, so one service
// serves both, parameterized by entity.RelationKind.
package interaction

import "errors"

// Sentinel errors for interaction use case operations.
var (
	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrMissingUserID indicates that no authenticated user was supplied.
	ErrMissingUserID = errors.New("missing user ID")
)
