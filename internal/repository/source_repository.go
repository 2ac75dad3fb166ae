package repository

import (
	"context"

	"github.com/maviles7/dailydose/internal/domain/entity"
)

type SourceRepository interface {
	// GetOrCreate resolves a source by exact name, creating it when absent.
	// The implementation must be a single atomic upsert so concurrent
	// ingestion runs cannot create duplicate rows for the same name.
	GetOrCreate(ctx context.Context, name string) (*entity.Source, error)
	// Get retrieves a source by ID. Returns (nil, nil) when not found.
	Get(ctx context.Context, id int64) (*entity.Source, error)
	// List retrieves all sources ordered by ID.
	List(ctx context.Context) ([]*entity.Source, error)
}
