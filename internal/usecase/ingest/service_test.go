package ingest_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/repository"
	"github.com/maviles7/dailydose/internal/usecase/ingest"
	"github.com/maviles7/dailydose/internal/usecase/notify"
	"github.com/maviles7/dailydose/tests/fixtures"
)

/* ───────── stub implementations ───────── */

type stubFetcher struct {
	headlines []ingest.Headline
}

func (s *stubFetcher) FetchTop(_ context.Context) []ingest.Headline {
	return s.headlines
}

type stubContentFetcher struct {
	content  string
	fetchErr error
	calls    int32
}

func (s *stubContentFetcher) FetchContent(_ context.Context, _ string) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.fetchErr != nil {
		return "", s.fetchErr
	}
	return s.content, nil
}

type mockNotifyService struct {
	notifyCalled int32
}

func (m *mockNotifyService) NotifyNewArticle(_ context.Context, _ *entity.Article, _ *entity.Source) error {
	atomic.AddInt32(&m.notifyCalled, 1)
	return nil
}

func (m *mockNotifyService) GetChannelHealth() []notify.ChannelHealthStatus { return nil }

func (m *mockNotifyService) Shutdown(_ context.Context) error { return nil }

type stubSourceRepo struct {
	mu           sync.Mutex
	sources      map[string]*entity.Source
	getOrCreates int
	err          error
}

func (s *stubSourceRepo) GetOrCreate(_ context.Context, name string) (*entity.Source, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreates++
	if s.sources == nil {
		s.sources = make(map[string]*entity.Source)
	}
	if src, ok := s.sources[name]; ok {
		return src, nil
	}
	src := &entity.Source{ID: int64(len(s.sources) + 1), Name: name}
	s.sources[name] = src
	return src, nil
}

// unused, present to satisfy the interface
func (s *stubSourceRepo) Get(_ context.Context, _ int64) (*entity.Source, error) {
	return nil, nil
}
func (s *stubSourceRepo) List(_ context.Context) ([]*entity.Source, error) {
	return nil, nil
}

type stubArticleRepo struct {
	mu        sync.Mutex
	articles  map[string]*entity.Article
	existsMap map[string]bool
	existsErr error
	upsertErr error
	nextID    int64
}

func (s *stubArticleRepo) Upsert(_ context.Context, a *entity.Article) (bool, error) {
	if s.upsertErr != nil {
		return false, s.upsertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.articles == nil {
		s.articles = make(map[string]*entity.Article)
	}
	if existing, ok := s.articles[a.URL]; ok {
		a.ID = existing.ID
		s.articles[a.URL] = a
		return false, nil
	}
	s.nextID++
	a.ID = s.nextID
	s.articles[a.URL] = a
	return true, nil
}

func (s *stubArticleRepo) ExistsByURLBatch(_ context.Context, urls []string) (map[string]bool, error) {
	if s.existsErr != nil {
		return nil, s.existsErr
	}
	result := make(map[string]bool)
	for _, url := range urls {
		result[url] = s.existsMap[url]
	}
	return result, nil
}

// unused, present to satisfy the interface
func (s *stubArticleRepo) ListWithSourcePaginated(_ context.Context, _, _ int) ([]repository.ArticleWithSource, error) {
	return nil, nil
}
func (s *stubArticleRepo) CountArticles(_ context.Context) (int64, error) { return 0, nil }
func (s *stubArticleRepo) Get(_ context.Context, _ int64) (*entity.Article, error) {
	return nil, nil
}
func (s *stubArticleRepo) GetWithSource(_ context.Context, _ int64) (*entity.Article, string, error) {
	return nil, "", nil
}
func (s *stubArticleRepo) Search(_ context.Context, _ string) ([]*entity.Article, error) {
	return nil, nil
}

/* ───────── helpers ───────── */

func headline(url, source string) ingest.Headline {
	return ingest.Headline{
		SourceName:  source,
		Title:       "Title for " + url,
		URL:         url,
		PublishedAt: "2025-08-01T12:00:00Z",
		Content:     "short snippet",
	}
}

func newService(fetcher ingest.HeadlineFetcher, articleRepo *stubArticleRepo, sourceRepo *stubSourceRepo, contentFetcher ingest.ContentFetcher, notifier notify.Service) *ingest.Service {
	return ingest.NewService(sourceRepo, articleRepo, fetcher, contentFetcher, notifier, ingest.ContentConfig{
		Enabled:     true,
		Threshold:   1500,
		Parallelism: 4,
	})
}

/* ───────── tests ───────── */

func TestRun_IngestsNewArticles(t *testing.T) {
	fetcher := &stubFetcher{headlines: []ingest.Headline{
		headline("https://a.example/1", "A"),
		headline("https://a.example/2", "A"),
		headline("https://b.example/1", "B"),
	}}
	articleRepo := &stubArticleRepo{}
	sourceRepo := &stubSourceRepo{}
	notifier := &mockNotifyService{}

	svc := newService(fetcher, articleRepo, sourceRepo, nil, notifier)

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if stats.Fetched != 3 || stats.Ingested != 3 || stats.Updated != 0 || stats.Skipped != 0 || stats.Errors != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if len(articleRepo.articles) != 3 {
		t.Errorf("expected 3 stored articles, got %d", len(articleRepo.articles))
	}
	if got := atomic.LoadInt32(&notifier.notifyCalled); got != 3 {
		t.Errorf("expected 3 notifications, got %d", got)
	}
	// Two distinct source names means two resolutions; the rest hit the cache.
	if sourceRepo.getOrCreates != 2 {
		t.Errorf("expected 2 source lookups, got %d", sourceRepo.getOrCreates)
	}
	for _, art := range articleRepo.articles {
		if art.SourceID == 0 {
			t.Errorf("article %q has no source ID", art.URL)
		}
	}
}

func TestRun_UpdatesExistingArticles(t *testing.T) {
	fetcher := &stubFetcher{headlines: []ingest.Headline{
		headline("https://a.example/1", "A"),
		headline("https://a.example/2", "A"),
	}}
	articleRepo := &stubArticleRepo{
		articles:  map[string]*entity.Article{"https://a.example/1": {ID: 7, URL: "https://a.example/1"}},
		existsMap: map[string]bool{"https://a.example/1": true},
		nextID:    7,
	}
	notifier := &mockNotifyService{}

	svc := newService(fetcher, articleRepo, &stubSourceRepo{}, nil, notifier)

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if stats.Ingested != 1 || stats.Updated != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
	// Only the freshly inserted article triggers a notification.
	if got := atomic.LoadInt32(&notifier.notifyCalled); got != 1 {
		t.Errorf("expected 1 notification, got %d", got)
	}
}

func TestRun_SkipsMalformedHeadlines(t *testing.T) {
	bad := headline("https://a.example/bad", "A")
	bad.Title = ""
	fetcher := &stubFetcher{headlines: []ingest.Headline{
		bad,
		headline("https://a.example/good", "A"),
	}}
	articleRepo := &stubArticleRepo{}

	svc := newService(fetcher, articleRepo, &stubSourceRepo{}, nil, nil)

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if stats.Skipped != 1 || stats.Ingested != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestRun_EmptyBatch(t *testing.T) {
	svc := newService(&stubFetcher{}, &stubArticleRepo{}, &stubSourceRepo{}, nil, nil)

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Fetched != 0 || stats.Ingested != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestRun_UpsertErrorDoesNotAbortBatch(t *testing.T) {
	fetcher := &stubFetcher{headlines: []ingest.Headline{
		headline("https://a.example/1", "A"),
		headline("https://a.example/2", "A"),
	}}
	articleRepo := &stubArticleRepo{upsertErr: errors.New("connection reset")}

	svc := newService(fetcher, articleRepo, &stubSourceRepo{}, nil, nil)

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Errors != 2 || stats.Ingested != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestRun_SourceErrorCountsPerRecord(t *testing.T) {
	fetcher := &stubFetcher{headlines: []ingest.Headline{
		headline("https://a.example/1", "A"),
	}}

	svc := newService(fetcher, &stubArticleRepo{}, &stubSourceRepo{err: errors.New("db down")}, nil, nil)

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Errors != 1 || stats.Ingested != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestRun_EnhancesShortSnippets(t *testing.T) {
	fetcher := &stubFetcher{headlines: []ingest.Headline{
		headline("https://a.example/1", "A"),
	}}
	articleRepo := &stubArticleRepo{}
	fullText := fixtures.ArticleText(500)
	contentFetcher := &stubContentFetcher{content: fullText}

	svc := newService(fetcher, articleRepo, &stubSourceRepo{}, contentFetcher, nil)

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := atomic.LoadInt32(&contentFetcher.calls); got != 1 {
		t.Fatalf("expected 1 content fetch, got %d", got)
	}
	art := articleRepo.articles["https://a.example/1"]
	if art.Content == nil || *art.Content != fullText {
		t.Errorf("expected enhanced content, got %v", art.Content)
	}
}

func TestRun_ContentFetchFailureKeepsSnippet(t *testing.T) {
	fetcher := &stubFetcher{headlines: []ingest.Headline{
		headline("https://a.example/1", "A"),
	}}
	articleRepo := &stubArticleRepo{}
	contentFetcher := &stubContentFetcher{fetchErr: ingest.ErrReadabilityFailed}

	svc := newService(fetcher, articleRepo, &stubSourceRepo{}, contentFetcher, nil)

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Ingested != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
	art := articleRepo.articles["https://a.example/1"]
	if art.Content == nil || *art.Content != "short snippet" {
		t.Errorf("expected snippet fallback, got %v", art.Content)
	}
}

func TestRun_SkipsContentFetchForKnownURLs(t *testing.T) {
	fetcher := &stubFetcher{headlines: []ingest.Headline{
		headline("https://a.example/1", "A"),
	}}
	articleRepo := &stubArticleRepo{
		articles:  map[string]*entity.Article{"https://a.example/1": {ID: 1, URL: "https://a.example/1"}},
		existsMap: map[string]bool{"https://a.example/1": true},
		nextID:    1,
	}
	contentFetcher := &stubContentFetcher{content: "irrelevant"}

	svc := newService(fetcher, articleRepo, &stubSourceRepo{}, contentFetcher, nil)

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := atomic.LoadInt32(&contentFetcher.calls); got != 0 {
		t.Errorf("expected no content fetches for a known URL, got %d", got)
	}
}

func TestRun_BatchCheckFailureTreatsAllAsNew(t *testing.T) {
	fetcher := &stubFetcher{headlines: []ingest.Headline{
		headline("https://a.example/1", "A"),
	}}
	articleRepo := &stubArticleRepo{existsErr: errors.New("db down")}

	svc := newService(fetcher, articleRepo, &stubSourceRepo{}, nil, nil)

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Ingested != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}
