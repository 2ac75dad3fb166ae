package repository

import (
	"context"

	"github.com/maviles7/dailydose/internal/domain/entity"
)

// RelationRepository persists the favorite and bookmark join entities.
// Both kinds share one contract; the kind selects the backing table.
type RelationRepository interface {
	// Add inserts a (user, article) row of the given kind. Adding an already
	// present pair is a no-op thanks to the store-level uniqueness
	// constraint (ON CONFLICT DO NOTHING). Returns true when a row was
	// actually inserted.
	Add(ctx context.Context, kind entity.RelationKind, userID string, articleID int64) (added bool, err error)
	// Remove deletes the (user, article) row of the given kind if present.
	// Removing an absent pair is a no-op. Returns true when a row was deleted.
	Remove(ctx context.Context, kind entity.RelationKind, userID string, articleID int64) (removed bool, err error)
	// Exists reports whether a (user, article) row of the given kind exists.
	Exists(ctx context.Context, kind entity.RelationKind, userID string, articleID int64) (bool, error)
	// ListArticlesByUser returns the articles the user has related, with
	// source names, ordered by relation creation time descending.
	ListArticlesByUser(ctx context.Context, kind entity.RelationKind, userID string) ([]ArticleWithSource, error)
}
