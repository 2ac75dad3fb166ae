package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/repository"
)

const articleColumns = `id, source_id, author, title, description, url, image_url, published_at, content, category, user_id, created_at, updated_at`

type ArticleRepo struct{ db *sql.DB }

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func scanArticle(rows *sql.Rows) (*entity.Article, error) {
	var article entity.Article
	if err := rows.Scan(&article.ID, &article.SourceID, &article.Author,
		&article.Title, &article.Description, &article.URL, &article.ImageURL,
		&article.PublishedAt, &article.Content, &article.Category,
		&article.UserID, &article.CreatedAt, &article.UpdatedAt); err != nil {
		return nil, err
	}
	return &article, nil
}

// Upsert inserts the article or overwrites the mutable fields of the row that
// already holds its URL. xmax = 0 distinguishes a fresh insert from a
// conflict-update, so callers can count inserted vs. updated without a second
// query.
func (repo *ArticleRepo) Upsert(ctx context.Context, article *entity.Article) (bool, error) {
	const query = `
INSERT INTO articles
       (source_id, author, title, description, url, image_url, published_at, content, category, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (url) DO UPDATE SET
       source_id    = EXCLUDED.source_id,
       author       = EXCLUDED.author,
       title        = EXCLUDED.title,
       description  = EXCLUDED.description,
       image_url    = EXCLUDED.image_url,
       published_at = EXCLUDED.published_at,
       content      = EXCLUDED.content,
       category     = EXCLUDED.category,
       updated_at   = now()
RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`
	var inserted bool
	err := repo.db.QueryRowContext(ctx, query,
		article.SourceID, article.Author, article.Title, article.Description,
		article.URL, article.ImageURL, article.PublishedAt, article.Content,
		article.Category, article.UserID,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("Upsert: %w", err)
	}
	return inserted, nil
}

// ExistsByURLBatch checks URL existence in a single round trip.
func (repo *ArticleRepo) ExistsByURLBatch(ctx context.Context, urls []string) (map[string]bool, error) {
	if len(urls) == 0 {
		return make(map[string]bool), nil
	}

	const query = `SELECT url FROM articles WHERE url = ANY($1)`
	rows, err := repo.db.QueryContext(ctx, query, pq.Array(urls))
	if err != nil {
		return nil, fmt.Errorf("ExistsByURLBatch: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]bool, len(urls))
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("ExistsByURLBatch: Scan: %w", err)
		}
		result[url] = true
	}
	return result, rows.Err()
}

func (repo *ArticleRepo) ListWithSourcePaginated(ctx context.Context, offset, limit int) ([]repository.ArticleWithSource, error) {
	const query = `
SELECT a.id, a.source_id, a.author, a.title, a.description, a.url, a.image_url,
       a.published_at, a.content, a.category, a.user_id, a.created_at, a.updated_at,
       s.name AS source_name
FROM articles a
INNER JOIN sources s ON a.source_id = s.id
ORDER BY a.published_at DESC
LIMIT $1 OFFSET $2`

	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListWithSourcePaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithSource, 0, limit)
	for rows.Next() {
		var article entity.Article
		var sourceName string
		if err := rows.Scan(&article.ID, &article.SourceID, &article.Author,
			&article.Title, &article.Description, &article.URL, &article.ImageURL,
			&article.PublishedAt, &article.Content, &article.Category,
			&article.UserID, &article.CreatedAt, &article.UpdatedAt,
			&sourceName); err != nil {
			return nil, fmt.Errorf("ListWithSourcePaginated: Scan: %w", err)
		}
		result = append(result, repository.ArticleWithSource{
			Article:    &article,
			SourceName: sourceName,
		})
	}
	return result, rows.Err()
}

func (repo *ArticleRepo) CountArticles(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.SourceID, &article.Author, &article.Title,
			&article.Description, &article.URL, &article.ImageURL,
			&article.PublishedAt, &article.Content, &article.Category,
			&article.UserID, &article.CreatedAt, &article.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) GetWithSource(ctx context.Context, id int64) (*entity.Article, string, error) {
	const query = `
SELECT a.id, a.source_id, a.author, a.title, a.description, a.url, a.image_url,
       a.published_at, a.content, a.category, a.user_id, a.created_at, a.updated_at,
       s.name AS source_name
FROM articles a
INNER JOIN sources s ON a.source_id = s.id
WHERE a.id = $1
LIMIT 1`
	var article entity.Article
	var sourceName string
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.SourceID, &article.Author, &article.Title,
			&article.Description, &article.URL, &article.ImageURL,
			&article.PublishedAt, &article.Content, &article.Category,
			&article.UserID, &article.CreatedAt, &article.UpdatedAt,
			&sourceName)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("GetWithSource: %w", err)
	}
	return &article, sourceName, nil
}

func (repo *ArticleRepo) Search(ctx context.Context, keyword string) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE title       ILIKE $1
   OR description ILIKE $1
ORDER BY published_at DESC`
	param := "%" + keyword + "%"
	rows, err := repo.db.QueryContext(ctx, query, param)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 100)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("Search: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}
