package article

import (
	"context"
	"fmt"

	"github.com/maviles7/dailydose/internal/common/pagination"
	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/repository"
)

// Service provides article query use cases.
// It handles business logic for article reads and delegates persistence to the repository.
type Service struct {
	Repo        repository.ArticleRepository
	CommentRepo repository.CommentRepository
}

// PaginatedResult represents the result of a paginated query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []repository.ArticleWithSource
	Pagination pagination.Metadata
}

// Detail is an article joined with its source name and comment count,
// as shown on the article detail view.
type Detail struct {
	Article      *entity.Article
	SourceName   string
	CommentCount int64
}

// ListPaginated retrieves articles with pagination support, newest first.
// It calculates the appropriate offset, retrieves the data and total count,
// and returns a PaginatedResult with both data and metadata.
func (s *Service) ListPaginated(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	offset := pagination.CalculateOffset(params.Page, params.Limit)

	total, err := s.Repo.CountArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	articles, err := s.Repo.ListWithSourcePaginated(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles paginated: %w", err)
	}

	return &PaginatedResult{
		Data: articles,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// GetDetail retrieves an article with its source name and comment count.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) GetDetail(ctx context.Context, id int64) (*Detail, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, sourceName, err := s.Repo.GetWithSource(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article with source: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	count, err := s.CommentRepo.CountByArticle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	return &Detail{
		Article:      art,
		SourceName:   sourceName,
		CommentCount: count,
	}, nil
}

// Search finds articles matching the given keyword.
// The search is performed against article titles and descriptions.
// Returns an error if the repository operation fails.
func (s *Service) Search(ctx context.Context, kw string) ([]*entity.Article, error) {
	articles, err := s.Repo.Search(ctx, kw)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return articles, nil
}
