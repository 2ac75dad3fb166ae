package comment_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/repository"
	"github.com/maviles7/dailydose/internal/usecase/comment"
)

type stubCommentRepo struct {
	comments map[int64]*entity.Comment
	nextID   int64
	err      error
}

func (s *stubCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	if s.err != nil {
		return s.err
	}
	if s.comments == nil {
		s.comments = make(map[int64]*entity.Comment)
	}
	s.nextID++
	c.ID = s.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	s.comments[c.ID] = c
	return nil
}

func (s *stubCommentRepo) Get(_ context.Context, id int64) (*entity.Comment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.comments[id], nil
}

func (s *stubCommentRepo) UpdateText(_ context.Context, id int64, text string) error {
	if s.err != nil {
		return s.err
	}
	c, ok := s.comments[id]
	if !ok {
		return errors.New("no row")
	}
	c.Text = text
	c.UpdatedAt = time.Now()
	return nil
}

func (s *stubCommentRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.comments, id)
	return nil
}

func (s *stubCommentRepo) ListByArticle(_ context.Context, articleID int64) ([]*entity.Comment, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Comment
	for _, c := range s.comments {
		if c.ArticleID == articleID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *stubCommentRepo) CountByArticle(_ context.Context, articleID int64) (int64, error) {
	list, _ := s.ListByArticle(context.Background(), articleID)
	return int64(len(list)), nil
}

type stubArticleRepo struct {
	articles map[int64]*entity.Article
}

func (s *stubArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	return s.articles[id], nil
}

// unused, present to satisfy the interface
func (s *stubArticleRepo) Upsert(_ context.Context, _ *entity.Article) (bool, error) {
	return false, nil
}
func (s *stubArticleRepo) ExistsByURLBatch(_ context.Context, _ []string) (map[string]bool, error) {
	return nil, nil
}
func (s *stubArticleRepo) ListWithSourcePaginated(_ context.Context, _, _ int) ([]repository.ArticleWithSource, error) {
	return nil, nil
}
func (s *stubArticleRepo) CountArticles(_ context.Context) (int64, error) { return 0, nil }
func (s *stubArticleRepo) GetWithSource(_ context.Context, _ int64) (*entity.Article, string, error) {
	return nil, "", nil
}
func (s *stubArticleRepo) Search(_ context.Context, _ string) ([]*entity.Article, error) {
	return nil, nil
}

func newService(commentRepo *stubCommentRepo) *comment.Service {
	return &comment.Service{
		Repo:        commentRepo,
		ArticleRepo: &stubArticleRepo{articles: map[int64]*entity.Article{1: {ID: 1}}},
	}
}

func TestCreate(t *testing.T) {
	repo := &stubCommentRepo{}
	svc := newService(repo)

	c, err := svc.Create(context.Background(), 1, "user-1", "  nice write-up  ")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if c.ID == 0 {
		t.Error("expected generated comment ID")
	}
	if c.Text != "nice write-up" {
		t.Errorf("text should be trimmed, got %q", c.Text)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := newService(&stubCommentRepo{})

	var vErr *entity.ValidationError
	if _, err := svc.Create(context.Background(), 1, "user-1", "   "); !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError for blank text, got %v", err)
	}
	if _, err := svc.Create(context.Background(), 1, "user-1", strings.Repeat("x", entity.MaxCommentLength+1)); !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError for over-long text, got %v", err)
	}
	if _, err := svc.Create(context.Background(), 1, "", "hello"); !errors.Is(err, comment.ErrMissingUserID) {
		t.Errorf("expected ErrMissingUserID, got %v", err)
	}
}

func TestCreate_ArticleNotFound(t *testing.T) {
	svc := newService(&stubCommentRepo{})

	if _, err := svc.Create(context.Background(), 99, "user-1", "hello"); !errors.Is(err, comment.ErrArticleNotFound) {
		t.Errorf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestListByArticle_NewestFirst(t *testing.T) {
	repo := &stubCommentRepo{comments: map[int64]*entity.Comment{
		1: {ID: 1, ArticleID: 1, UserID: "u", Text: "first", CreatedAt: time.Now().Add(-2 * time.Hour)},
		2: {ID: 2, ArticleID: 1, UserID: "u", Text: "second", CreatedAt: time.Now().Add(-time.Hour)},
		3: {ID: 3, ArticleID: 2, UserID: "u", Text: "other article", CreatedAt: time.Now()},
	}, nextID: 3}
	svc := newService(repo)

	comments, err := svc.ListByArticle(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByArticle() error = %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Text != "second" || comments[1].Text != "first" {
		t.Errorf("expected newest-first ordering, got %q then %q", comments[0].Text, comments[1].Text)
	}
}

func TestEdit_ByAuthor(t *testing.T) {
	repo := &stubCommentRepo{comments: map[int64]*entity.Comment{
		1: {ID: 1, ArticleID: 1, UserID: "author", Text: "old"},
	}, nextID: 1}
	svc := newService(repo)

	if err := svc.Edit(context.Background(), 1, "author", "new text"); err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if repo.comments[1].Text != "new text" {
		t.Errorf("text not updated, got %q", repo.comments[1].Text)
	}
}

func TestEdit_ByNonAuthorIsSilentNoOp(t *testing.T) {
	repo := &stubCommentRepo{comments: map[int64]*entity.Comment{
		1: {ID: 1, ArticleID: 1, UserID: "author", Text: "original"},
	}, nextID: 1}
	svc := newService(repo)

	if err := svc.Edit(context.Background(), 1, "someone-else", "hijacked"); err != nil {
		t.Fatalf("non-author Edit() should succeed silently, got %v", err)
	}
	if repo.comments[1].Text != "original" {
		t.Errorf("non-author edit must not change text, got %q", repo.comments[1].Text)
	}
}

func TestEdit_NotFound(t *testing.T) {
	svc := newService(&stubCommentRepo{})

	if err := svc.Edit(context.Background(), 9, "user-1", "text"); !errors.Is(err, comment.ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestDelete_ByAuthor(t *testing.T) {
	repo := &stubCommentRepo{comments: map[int64]*entity.Comment{
		1: {ID: 1, ArticleID: 1, UserID: "author", Text: "bye"},
	}, nextID: 1}
	svc := newService(repo)

	if err := svc.Delete(context.Background(), 1, "author"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(repo.comments) != 0 {
		t.Error("comment should be deleted")
	}
}

func TestDelete_ByNonAuthorIsSilentNoOp(t *testing.T) {
	repo := &stubCommentRepo{comments: map[int64]*entity.Comment{
		1: {ID: 1, ArticleID: 1, UserID: "author", Text: "stay"},
	}, nextID: 1}
	svc := newService(repo)

	if err := svc.Delete(context.Background(), 1, "someone-else"); err != nil {
		t.Fatalf("non-author Delete() should succeed silently, got %v", err)
	}
	if len(repo.comments) != 1 {
		t.Error("non-author delete must not remove the comment")
	}
}
