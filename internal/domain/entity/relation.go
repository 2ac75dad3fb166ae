package entity

import (
	"fmt"
	"time"
)

// RelationKind distinguishes the two symmetric user-article join entities.
type RelationKind string

const (
	RelationFavorite RelationKind = "favorite"
	RelationBookmark RelationKind = "bookmark"
)

// Validate checks that the kind is one of the known relation kinds.
func (k RelationKind) Validate() error {
	switch k {
	case RelationFavorite, RelationBookmark:
		return nil
	default:
		return fmt.Errorf("invalid relation kind: %q", string(k))
	}
}

// Relation is a user-article join row (a favorite or a bookmark).
// At most one relation of each kind exists per (user, article) pair; the
// store enforces this with a uniqueness constraint.
type Relation struct {
	ID        int64
	Kind      RelationKind
	UserID    string
	ArticleID int64
	CreatedAt time.Time
}
