package db

import "database/sql"

// MigrateUp creates the schema. Uniqueness is enforced at the store level
// (sources.name, articles.url, one favorite/bookmark per user-article pair)
// so concurrent writers cannot race past a check-then-act sequence.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS sources (
    id         SERIAL PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id           SERIAL PRIMARY KEY,
    source_id    INTEGER NOT NULL REFERENCES sources(id),
    author       TEXT,
    title        TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    url          TEXT NOT NULL UNIQUE,
    image_url    TEXT,
    published_at TIMESTAMPTZ NOT NULL,
    content      TEXT,
    category     VARCHAR(50) NOT NULL DEFAULT 'general',
    user_id      TEXT,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS favorites (
    id         SERIAL PRIMARY KEY,
    user_id    TEXT NOT NULL,
    article_id INTEGER NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE(user_id, article_id)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS bookmarks (
    id         SERIAL PRIMARY KEY,
    user_id    TEXT NOT NULL,
    article_id INTEGER NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE(user_id, article_id)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS comments (
    id         SERIAL PRIMARY KEY,
    article_id INTEGER NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    user_id    TEXT NOT NULL,
    text       VARCHAR(250) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// list views order by published_at DESC
		`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_source_id ON articles(source_id)`,
		// comment lists order by created_at DESC per article
		`CREATE INDEX IF NOT EXISTS idx_comments_article_created ON comments(article_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_bookmarks_user ON bookmarks(user_id, created_at DESC)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE search endpoints; ignore errors when the
	// extension is unavailable or the role lacks privileges.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_description_gin ON articles USING gin(description gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		_, _ = db.Exec(idx)
	}

	return nil
}

// MigrateDown drops the schema in reverse dependency order.
// Use with caution: this deletes all data.
func MigrateDown(db *sql.DB) error {
	drops := []string{
		`DROP TABLE IF EXISTS comments`,
		`DROP TABLE IF EXISTS favorites`,
		`DROP TABLE IF EXISTS bookmarks`,
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS sources`,
	}
	for _, stmt := range drops {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
