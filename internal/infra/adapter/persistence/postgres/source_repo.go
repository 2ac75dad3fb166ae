// Package postgres provides Postgres implementations of the repository
// interfaces. Writes that must be race-free under concurrent callers are
// single-statement upserts backed by uniqueness constraints.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/repository"
)

type SourceRepo struct{ db *sql.DB }

func NewSourceRepo(db *sql.DB) repository.SourceRepository {
	return &SourceRepo{db: db}
}

// GetOrCreate resolves a source by exact name, inserting it when absent.
// The DO UPDATE arm is a no-op overwrite so RETURNING yields the row in both
// the insert and the already-exists case, keeping the operation atomic.
func (repo *SourceRepo) GetOrCreate(ctx context.Context, name string) (*entity.Source, error) {
	const query = `
INSERT INTO sources (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name, created_at`
	var source entity.Source
	err := repo.db.QueryRowContext(ctx, query, name).
		Scan(&source.ID, &source.Name, &source.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("GetOrCreate: %w", err)
	}
	return &source, nil
}

func (repo *SourceRepo) Get(ctx context.Context, id int64) (*entity.Source, error) {
	const query = `
SELECT id, name, created_at
FROM sources
WHERE id = $1
LIMIT 1`
	var source entity.Source
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&source.ID, &source.Name, &source.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &source, nil
}

func (repo *SourceRepo) List(ctx context.Context) ([]*entity.Source, error) {
	const query = `
SELECT id, name, created_at
FROM sources
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sources := make([]*entity.Source, 0, 50)
	for rows.Next() {
		var source entity.Source
		if err := rows.Scan(&source.ID, &source.Name, &source.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		sources = append(sources, &source)
	}
	return sources, rows.Err()
}
