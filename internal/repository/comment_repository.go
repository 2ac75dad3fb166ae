package repository

import (
	"context"

	"github.com/maviles7/dailydose/internal/domain/entity"
)

type CommentRepository interface {
	// Create persists a new comment and fills in its generated ID.
	Create(ctx context.Context, comment *entity.Comment) error
	// Get retrieves a comment by ID. Returns (nil, nil) when not found.
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	// UpdateText overwrites the comment text and bumps updated_at.
	UpdateText(ctx context.Context, id int64, text string) error
	// Delete removes a comment by ID.
	Delete(ctx context.Context, id int64) error
	// ListByArticle returns an article's comments ordered by created_at DESC.
	ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error)
	// CountByArticle returns the number of comments on an article.
	CountByArticle(ctx context.Context, articleID int64) (int64, error)
}
