package interaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/repository"
)

// Service provides favorite and bookmark use cases.
// The relation kind is fixed per instance; the API wires one Service for
// favorites and one for bookmarks over the same repositories.
type Service struct {
	kind         entity.RelationKind
	RelationRepo repository.RelationRepository
	ArticleRepo  repository.ArticleRepository
}

// NewService creates an interaction Service for the given relation kind.
func NewService(kind entity.RelationKind, relationRepo repository.RelationRepository, articleRepo repository.ArticleRepository) (*Service, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		kind:         kind,
		RelationRepo: relationRepo,
		ArticleRepo:  articleRepo,
	}, nil
}

// Kind returns the relation kind this service operates on.
func (s *Service) Kind() entity.RelationKind {
	return s.kind
}

// Add records the relation for the user and article. Adding an already
// present pair, or referencing an article that no longer exists, is a
// successful no-op: a stale button press must not surface as an error.
func (s *Service) Add(ctx context.Context, userID string, articleID int64) error {
	if err := s.checkInput(userID, articleID); err != nil {
		return err
	}

	art, err := s.ArticleRepo.Get(ctx, articleID)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		slog.Debug("ignoring relation add for missing article",
			slog.String("kind", string(s.kind)),
			slog.Int64("article_id", articleID))
		return nil
	}

	added, err := s.RelationRepo.Add(ctx, s.kind, userID, articleID)
	if err != nil {
		return fmt.Errorf("add %s: %w", s.kind, err)
	}
	if !added {
		slog.Debug("relation already present",
			slog.String("kind", string(s.kind)),
			slog.Int64("article_id", articleID))
	}
	return nil
}

// Remove deletes the relation for the user and article if present.
// Removing an absent pair or referencing a missing article is a
// successful no-op.
func (s *Service) Remove(ctx context.Context, userID string, articleID int64) error {
	if err := s.checkInput(userID, articleID); err != nil {
		return err
	}

	if _, err := s.RelationRepo.Remove(ctx, s.kind, userID, articleID); err != nil {
		return fmt.Errorf("remove %s: %w", s.kind, err)
	}
	return nil
}

// Exists reports whether the user has the relation on the article.
func (s *Service) Exists(ctx context.Context, userID string, articleID int64) (bool, error) {
	if err := s.checkInput(userID, articleID); err != nil {
		return false, err
	}

	exists, err := s.RelationRepo.Exists(ctx, s.kind, userID, articleID)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", s.kind, err)
	}
	return exists, nil
}

// ListByUser returns the user's related articles with their source names,
// most recently related first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]repository.ArticleWithSource, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}

	articles, err := s.RelationRepo.ListArticlesByUser(ctx, s.kind, userID)
	if err != nil {
		return nil, fmt.Errorf("list %s articles: %w", s.kind, err)
	}
	return articles, nil
}

func (s *Service) checkInput(userID string, articleID int64) error {
	if strings.TrimSpace(userID) == "" {
		return ErrMissingUserID
	}
	if articleID <= 0 {
		return ErrInvalidArticleID
	}
	return nil
}
