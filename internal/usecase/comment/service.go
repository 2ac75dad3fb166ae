package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/repository"
)

// Service provides comment use cases.
// Edit and Delete enforce authorship: a request by anyone other than the
// comment's author is a silent no-op, not an error, so authorship cannot
// be probed through the API.
type Service struct {
	Repo        repository.CommentRepository
	ArticleRepo repository.ArticleRepository
}

// Create validates and persists a new comment on an article.
// Returns entity.ValidationError for empty or over-long text,
// ErrArticleNotFound when the article does not exist.
func (s *Service) Create(ctx context.Context, articleID int64, userID, text string) (*entity.Comment, error) {
	if articleID <= 0 {
		return nil, ErrInvalidArticleID
	}
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	if err := entity.ValidateCommentText(text); err != nil {
		return nil, err
	}

	art, err := s.ArticleRepo.Get(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	c := &entity.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Text:      strings.TrimSpace(text),
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

// ListByArticle returns an article's comments, newest first.
func (s *Service) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	if articleID <= 0 {
		return nil, ErrInvalidArticleID
	}

	comments, err := s.Repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Edit replaces the comment text when the requester authored the comment.
// A non-author request succeeds without changing anything. Returns
// ErrCommentNotFound when the comment does not exist and
// entity.ValidationError for invalid replacement text.
func (s *Service) Edit(ctx context.Context, id int64, userID, text string) error {
	if err := entity.ValidateCommentText(text); err != nil {
		return err
	}

	c, err := s.authorize(ctx, id, userID)
	if err != nil || c == nil {
		return err
	}

	if err := s.Repo.UpdateText(ctx, id, strings.TrimSpace(text)); err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

// Delete removes the comment when the requester authored it.
// A non-author request succeeds without deleting anything. Returns
// ErrCommentNotFound when the comment does not exist.
func (s *Service) Delete(ctx context.Context, id int64, userID string) error {
	c, err := s.authorize(ctx, id, userID)
	if err != nil || c == nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

// authorize loads the comment and checks authorship. It returns the comment
// only when the requester may mutate it; (nil, nil) signals the silent no-op
// path for non-authors.
func (s *Service) authorize(ctx context.Context, id int64, userID string) (*entity.Comment, error) {
	if id <= 0 {
		return nil, ErrInvalidCommentID
	}
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}

	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if c == nil {
		return nil, ErrCommentNotFound
	}
	if !c.IsAuthor(userID) {
		slog.Debug("ignoring comment mutation by non-author",
			slog.Int64("comment_id", id))
		return nil, nil
	}
	return c, nil
}
