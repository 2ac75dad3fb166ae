package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/repository"
)

type RelationRepo struct{ db *sql.DB }

func NewRelationRepo(db *sql.DB) repository.RelationRepository {
	return &RelationRepo{db: db}
}

// tableFor maps a relation kind to its backing table. The kind is validated
// before interpolation; no user input ever reaches this switch.
func tableFor(kind entity.RelationKind) (string, error) {
	switch kind {
	case entity.RelationFavorite:
		return "favorites", nil
	case entity.RelationBookmark:
		return "bookmarks", nil
	default:
		return "", fmt.Errorf("unknown relation kind: %q", string(kind))
	}
}

// Add inserts the (user, article) pair, relying on the uniqueness constraint
// instead of a racy look-before-insert. Returns true when a row was inserted.
func (repo *RelationRepo) Add(ctx context.Context, kind entity.RelationKind, userID string, articleID int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`
INSERT INTO %s (user_id, article_id)
VALUES ($1, $2)
ON CONFLICT (user_id, article_id) DO NOTHING`, table)
	res, err := repo.db.ExecContext(ctx, query, userID, articleID)
	if err != nil {
		return false, fmt.Errorf("Add: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (repo *RelationRepo) Remove(ctx context.Context, kind entity.RelationKind, userID string, articleID int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND article_id = $2`, table)
	res, err := repo.db.ExecContext(ctx, query, userID, articleID)
	if err != nil {
		return false, fmt.Errorf("Remove: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (repo *RelationRepo) Exists(ctx context.Context, kind entity.RelationKind, userID string, articleID int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE user_id = $1 AND article_id = $2)`, table)
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, userID, articleID).Scan(&exists); err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return exists, nil
}

func (repo *RelationRepo) ListArticlesByUser(ctx context.Context, kind entity.RelationKind, userID string) ([]repository.ArticleWithSource, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
SELECT a.id, a.source_id, a.author, a.title, a.description, a.url, a.image_url,
       a.published_at, a.content, a.category, a.user_id, a.created_at, a.updated_at,
       s.name AS source_name
FROM %s r
INNER JOIN articles a ON r.article_id = a.id
INNER JOIN sources  s ON a.source_id = s.id
WHERE r.user_id = $1
ORDER BY r.created_at DESC`, table)

	rows, err := repo.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ListArticlesByUser: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithSource, 0, 50)
	for rows.Next() {
		var article entity.Article
		var sourceName string
		if err := rows.Scan(&article.ID, &article.SourceID, &article.Author,
			&article.Title, &article.Description, &article.URL, &article.ImageURL,
			&article.PublishedAt, &article.Content, &article.Category,
			&article.UserID, &article.CreatedAt, &article.UpdatedAt,
			&sourceName); err != nil {
			return nil, fmt.Errorf("ListArticlesByUser: Scan: %w", err)
		}
		result = append(result, repository.ArticleWithSource{
			Article:    &article,
			SourceName: sourceName,
		})
	}
	return result, rows.Err()
}
