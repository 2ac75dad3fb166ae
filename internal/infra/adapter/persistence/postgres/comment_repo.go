package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/repository"
)

type CommentRepo struct{ db *sql.DB }

func NewCommentRepo(db *sql.DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	const query = `
INSERT INTO comments (article_id, user_id, text)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		comment.ArticleID, comment.UserID, comment.Text,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	const query = `
SELECT id, article_id, user_id, text, created_at, updated_at
FROM comments
WHERE id = $1
LIMIT 1`
	var comment entity.Comment
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&comment.ID, &comment.ArticleID, &comment.UserID,
			&comment.Text, &comment.CreatedAt, &comment.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &comment, nil
}

func (repo *CommentRepo) UpdateText(ctx context.Context, id int64, text string) error {
	const query = `
UPDATE comments SET
       text       = $1,
       updated_at = now()
WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, text, id)
	if err != nil {
		return fmt.Errorf("UpdateText: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("UpdateText: no rows affected")
	}
	return nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM comments WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	const query = `
SELECT id, article_id, user_id, text, created_at, updated_at
FROM comments
WHERE article_id = $1
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 20)
	for rows.Next() {
		var comment entity.Comment
		if err := rows.Scan(&comment.ID, &comment.ArticleID, &comment.UserID,
			&comment.Text, &comment.CreatedAt, &comment.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListByArticle: Scan: %w", err)
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) CountByArticle(ctx context.Context, articleID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM comments WHERE article_id = $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, articleID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByArticle: %w", err)
	}
	return count, nil
}
