package article_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maviles7/dailydose/internal/common/pagination"
	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/repository"
	"github.com/maviles7/dailydose/internal/usecase/article"
)

type stubArticleRepo struct {
	articles   map[int64]*entity.Article
	sourceName string
	total      int64
	listed     []repository.ArticleWithSource
	lastOffset int
	lastLimit  int
	err        error
}

func (s *stubArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.articles[id], nil
}

func (s *stubArticleRepo) GetWithSource(_ context.Context, id int64) (*entity.Article, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	art := s.articles[id]
	if art == nil {
		return nil, "", nil
	}
	return art, s.sourceName, nil
}

func (s *stubArticleRepo) ListWithSourcePaginated(_ context.Context, offset, limit int) ([]repository.ArticleWithSource, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastOffset = offset
	s.lastLimit = limit
	return s.listed, nil
}

func (s *stubArticleRepo) CountArticles(_ context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.total, nil
}

func (s *stubArticleRepo) Search(_ context.Context, _ string) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*entity.Article{}, nil
}

// unused, present to satisfy the interface
func (s *stubArticleRepo) Upsert(_ context.Context, _ *entity.Article) (bool, error) {
	return false, nil
}
func (s *stubArticleRepo) ExistsByURLBatch(_ context.Context, _ []string) (map[string]bool, error) {
	return nil, nil
}

type stubCommentRepo struct {
	count int64
	err   error
}

func (s *stubCommentRepo) CountByArticle(_ context.Context, _ int64) (int64, error) {
	return s.count, s.err
}

// unused, present to satisfy the interface
func (s *stubCommentRepo) Create(_ context.Context, _ *entity.Comment) error { return nil }
func (s *stubCommentRepo) Get(_ context.Context, _ int64) (*entity.Comment, error) {
	return nil, nil
}
func (s *stubCommentRepo) UpdateText(_ context.Context, _ int64, _ string) error { return nil }
func (s *stubCommentRepo) Delete(_ context.Context, _ int64) error               { return nil }
func (s *stubCommentRepo) ListByArticle(_ context.Context, _ int64) ([]*entity.Comment, error) {
	return nil, nil
}

func testArticle(id int64) *entity.Article {
	return &entity.Article{
		ID:          id,
		SourceID:    1,
		Title:       "Test",
		URL:         "https://example.com/a",
		PublishedAt: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Category:    entity.DefaultCategory,
	}
}

func TestGet(t *testing.T) {
	repo := &stubArticleRepo{articles: map[int64]*entity.Article{1: testArticle(1)}}
	svc := &article.Service{Repo: repo}

	art, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if art.ID != 1 {
		t.Errorf("unexpected article %+v", art)
	}
}

func TestGet_InvalidID(t *testing.T) {
	svc := &article.Service{Repo: &stubArticleRepo{}}

	if _, err := svc.Get(context.Background(), 0); !errors.Is(err, article.ErrInvalidArticleID) {
		t.Errorf("expected ErrInvalidArticleID, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := &article.Service{Repo: &stubArticleRepo{}}

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, article.ErrArticleNotFound) {
		t.Errorf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestGetDetail(t *testing.T) {
	repo := &stubArticleRepo{
		articles:   map[int64]*entity.Article{1: testArticle(1)},
		sourceName: "example.com",
	}
	svc := &article.Service{Repo: repo, CommentRepo: &stubCommentRepo{count: 4}}

	detail, err := svc.GetDetail(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetDetail() error = %v", err)
	}
	if detail.SourceName != "example.com" {
		t.Errorf("unexpected source name %q", detail.SourceName)
	}
	if detail.CommentCount != 4 {
		t.Errorf("unexpected comment count %d", detail.CommentCount)
	}
}

func TestGetDetail_NotFound(t *testing.T) {
	svc := &article.Service{Repo: &stubArticleRepo{}, CommentRepo: &stubCommentRepo{}}

	if _, err := svc.GetDetail(context.Background(), 5); !errors.Is(err, article.ErrArticleNotFound) {
		t.Errorf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestListPaginated(t *testing.T) {
	repo := &stubArticleRepo{
		total: 45,
		listed: []repository.ArticleWithSource{
			{Article: testArticle(1), SourceName: "example.com"},
		},
	}
	svc := &article.Service{Repo: repo}

	result, err := svc.ListPaginated(context.Background(), pagination.Params{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("ListPaginated() error = %v", err)
	}

	if repo.lastOffset != 20 || repo.lastLimit != 10 {
		t.Errorf("unexpected offset/limit %d/%d", repo.lastOffset, repo.lastLimit)
	}
	if result.Pagination.Total != 45 || result.Pagination.TotalPages != 5 {
		t.Errorf("unexpected metadata %+v", result.Pagination)
	}
	if len(result.Data) != 1 {
		t.Errorf("unexpected data length %d", len(result.Data))
	}
}

func TestListPaginated_RepoError(t *testing.T) {
	svc := &article.Service{Repo: &stubArticleRepo{err: errors.New("db down")}}

	if _, err := svc.ListPaginated(context.Background(), pagination.Params{Page: 1, Limit: 10}); err == nil {
		t.Error("expected error to propagate")
	}
}
