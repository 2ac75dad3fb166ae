// Package repository defines the persistence boundary of the application.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"github.com/maviles7/dailydose/internal/domain/entity"
)

// ArticleWithSource represents an article along with its source name.
type ArticleWithSource struct {
	Article    *entity.Article
	SourceName string
}

type ArticleRepository interface {
	// Upsert inserts the article or, when a row with the same URL already
	// exists, overwrites its mutable fields (source, author, description,
	// image, published time, content, category). The article's URL is the
	// business key. Returns true when a new row was inserted, false when an
	// existing row was updated. The operation is a single atomic statement.
	Upsert(ctx context.Context, article *entity.Article) (inserted bool, err error)
	// ExistsByURLBatch checks URL existence in one round trip to avoid N+1
	// queries when filtering a fetched batch.
	ExistsByURLBatch(ctx context.Context, urls []string) (map[string]bool, error)
	// ListWithSourcePaginated retrieves articles with their source names,
	// ordered by published_at DESC, using LIMIT/OFFSET.
	ListWithSourcePaginated(ctx context.Context, offset, limit int) ([]ArticleWithSource, error)
	// CountArticles returns the total number of articles.
	CountArticles(ctx context.Context) (int64, error)
	// Get retrieves an article by ID. Returns (nil, nil) when not found.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// GetWithSource retrieves an article by ID with its source name.
	// Returns (nil, "", nil) when not found.
	GetWithSource(ctx context.Context, id int64) (*entity.Article, string, error)
	// Search finds articles whose title or description matches the keyword.
	Search(ctx context.Context, keyword string) ([]*entity.Article, error)
}
