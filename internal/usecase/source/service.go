package source

import (
	"context"
	"fmt"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/repository"
)

// Service provides source query use cases.
type Service struct {
	Repo repository.SourceRepository
}

// List retrieves all sources from the repository.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context) ([]*entity.Source, error) {
	sources, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return sources, nil
}

// Get retrieves a single source by its ID.
// Returns ErrInvalidSourceID if the ID is not positive.
// Returns ErrSourceNotFound if the source does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Source, error) {
	if id <= 0 {
		return nil, ErrInvalidSourceID
	}

	src, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	if src == nil {
		return nil, ErrSourceNotFound
	}
	return src, nil
}
