package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/infra/adapter/persistence/postgres"
)

var articleCols = []string{
	"id", "source_id", "author", "title", "description", "url", "image_url",
	"published_at", "content", "category", "user_id", "created_at", "updated_at",
}

func testArticle() *entity.Article {
	return &entity.Article{
		SourceID:    1,
		Title:       "A",
		Description: "desc",
		URL:         "http://x/1",
		PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Category:    entity.DefaultCategory,
	}
}

/* ──────────────────────────── 1. Upsert (insert) ──────────────────────── */

func TestArticleRepo_Upsert_insert(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	art := testArticle()
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO articles`)).
		WithArgs(art.SourceID, art.Author, art.Title, art.Description, art.URL,
			art.ImageURL, art.PublishedAt, art.Content, art.Category, art.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "inserted"}).
			AddRow(int64(10), now, now, true))

	repo := postgres.NewArticleRepo(db)
	inserted, err := repo.Upsert(context.Background(), art)
	if err != nil {
		t.Fatalf("Upsert err=%v", err)
	}
	if !inserted {
		t.Fatalf("want inserted=true for new row")
	}
	if art.ID != 10 {
		t.Fatalf("want generated ID filled in, got %d", art.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────── 2. Upsert (conflict update) ─────────────── */

func TestArticleRepo_Upsert_update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	art := testArticle()
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO articles`)).
		WithArgs(art.SourceID, art.Author, art.Title, art.Description, art.URL,
			art.ImageURL, art.PublishedAt, art.Content, art.Category, art.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "inserted"}).
			AddRow(int64(10), now.Add(-time.Hour), now, false))

	repo := postgres.NewArticleRepo(db)
	inserted, err := repo.Upsert(context.Background(), art)
	if err != nil {
		t.Fatalf("Upsert err=%v", err)
	}
	if inserted {
		t.Fatalf("want inserted=false when URL already exists")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────── 3. ExistsByURLBatch ─────────────────────── */

func TestArticleRepo_ExistsByURLBatch(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	urls := []string{"http://x/1", "http://x/2"}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT url FROM articles WHERE url = ANY($1)`)).
		WithArgs(pq.Array(urls)).
		WillReturnRows(sqlmock.NewRows([]string{"url"}).AddRow("http://x/1"))

	repo := postgres.NewArticleRepo(db)
	got, err := repo.ExistsByURLBatch(context.Background(), urls)
	if err != nil {
		t.Fatalf("ExistsByURLBatch err=%v", err)
	}
	if !got["http://x/1"] || got["http://x/2"] {
		t.Fatalf("unexpected existence map: %v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ExistsByURLBatch_empty(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := postgres.NewArticleRepo(db)
	got, err := repo.ExistsByURLBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("ExistsByURLBatch err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty map, got %v", got)
	}
}

/* ──────────────────────────── 4. GetWithSource ────────────────────────── */

func TestArticleRepo_GetWithSource_notFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM articles`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(append(articleCols, "source_name")))

	repo := postgres.NewArticleRepo(db)
	art, name, err := repo.GetWithSource(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetWithSource err=%v", err)
	}
	if art != nil || name != "" {
		t.Fatalf("want (nil, \"\") for missing article")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────── 5. ListWithSourcePaginated ──────────────── */

func TestArticleRepo_ListWithSourcePaginated(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(`FROM articles`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(append(articleCols, "source_name")).
			AddRow(int64(1), int64(1), nil, "A", "desc", "http://x/1", nil,
				now, nil, "general", nil, now, now, "BBC"))

	repo := postgres.NewArticleRepo(db)
	got, err := repo.ListWithSourcePaginated(context.Background(), 0, 20)
	if err != nil {
		t.Fatalf("ListWithSourcePaginated err=%v", err)
	}
	if len(got) != 1 || got[0].SourceName != "BBC" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
