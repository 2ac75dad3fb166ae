package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/observability/metrics"
	"github.com/maviles7/dailydose/internal/repository"
	"github.com/maviles7/dailydose/internal/usecase/notify"
)

// ContentConfig controls the content enhancement step of the pipeline.
type ContentConfig struct {
	Enabled     bool // When false, the upstream snippet is stored as-is
	Threshold   int  // Minimum snippet length before fetching full content
	Parallelism int  // Maximum concurrent content fetches
}

// Service runs the ingestion pipeline: fetch top headlines, normalize
// them into articles, resolve sources, enhance content, and upsert.
type Service struct {
	SourceRepo     repository.SourceRepository
	ArticleRepo    repository.ArticleRepository
	Fetcher        HeadlineFetcher
	ContentFetcher ContentFetcher // nil disables content enhancement
	NotifyService  notify.Service // nil disables notifications
	contentConfig  ContentConfig
}

// NewService creates an ingestion Service with the provided dependencies.
// ContentFetcher and NotifyService may be nil to disable the respective step.
func NewService(
	sourceRepo repository.SourceRepository,
	articleRepo repository.ArticleRepository,
	fetcher HeadlineFetcher,
	contentFetcher ContentFetcher,
	notifyService notify.Service,
	contentConfig ContentConfig,
) *Service {
	return &Service{
		SourceRepo:     sourceRepo,
		ArticleRepo:    articleRepo,
		Fetcher:        fetcher,
		ContentFetcher: contentFetcher,
		NotifyService:  notifyService,
		contentConfig:  contentConfig,
	}
}

// Stats contains counters for a single ingestion run.
type Stats struct {
	Fetched  int
	Ingested int64
	Updated  int64
	Skipped  int64
	Errors   int64
	Duration time.Duration
}

// candidate is a normalized headline paired with its resolved source
// and whether the URL already exists in the store.
type candidate struct {
	article *entity.Article
	source  *entity.Source
	exists  bool
}

// Run executes one ingestion cycle and returns its statistics.
//
// The batch is processed record by record: a headline that fails
// validation, or an article whose upsert fails, is counted and skipped
// without affecting the rest of the batch. An empty upstream batch is
// not an error. Run returns a non-nil error only when the context is
// cancelled mid-run.
func (s *Service) Run(ctx context.Context) (*Stats, error) {
	logger := slog.Default()
	start := time.Now()
	stats := &Stats{}

	headlines := s.Fetcher.FetchTop(ctx)
	stats.Fetched = len(headlines)
	if len(headlines) == 0 {
		stats.Duration = time.Since(start)
		logger.Info("no headlines fetched, nothing to ingest")
		metrics.RecordIngestRun(stats.Duration)
		return stats, nil
	}

	candidates := s.prepare(ctx, headlines, stats)

	if err := s.processCandidates(ctx, candidates, stats); err != nil {
		stats.Duration = time.Since(start)
		metrics.RecordIngestRun(stats.Duration)
		return stats, err
	}

	stats.Duration = time.Since(start)
	metrics.RecordIngestRun(stats.Duration)

	logger.Info("ingestion run completed",
		slog.Int("fetched", stats.Fetched),
		slog.Int64("ingested", stats.Ingested),
		slog.Int64("updated", stats.Updated),
		slog.Int64("skipped", stats.Skipped),
		slog.Int64("errors", stats.Errors),
		slog.Duration("duration", stats.Duration),
	)

	return stats, nil
}

// prepare validates and normalizes the fetched headlines, resolves their
// sources, and marks which URLs already exist in the store. Normalization
// failures are counted as skips; source resolution failures as errors.
// Both leave the rest of the batch untouched.
func (s *Service) prepare(ctx context.Context, headlines []Headline, stats *Stats) []candidate {
	logger := slog.Default()

	normalized := make([]*entity.Article, 0, len(headlines))
	sourceNames := make([]string, 0, len(headlines))
	for _, h := range headlines {
		art, err := normalize(h)
		if err != nil {
			stats.Skipped++
			metrics.RecordIngestOutcome("skipped")
			logger.Warn("skipping malformed headline",
				slog.String("url", h.URL),
				slog.String("source", h.SourceName),
				slog.Any("error", err))
			continue
		}
		normalized = append(normalized, art)
		sourceNames = append(sourceNames, h.SourceName)
	}

	existsMap := s.checkExisting(ctx, normalized)

	// Sources repeat heavily within a batch; resolve each name once.
	sourceCache := make(map[string]*entity.Source)
	candidates := make([]candidate, 0, len(normalized))
	for i, art := range normalized {
		name := sourceNames[i]
		src, ok := sourceCache[name]
		if !ok {
			var err error
			src, err = s.SourceRepo.GetOrCreate(ctx, name)
			if err != nil {
				stats.Errors++
				metrics.RecordIngestOutcome("error")
				logger.Warn("failed to resolve source",
					slog.String("source", name),
					slog.String("url", art.URL),
					slog.Any("error", err))
				continue
			}
			sourceCache[name] = src
		}
		art.SourceID = src.ID
		candidates = append(candidates, candidate{
			article: art,
			source:  src,
			exists:  existsMap[art.URL],
		})
	}

	return candidates
}

// checkExisting batch-checks which article URLs are already stored.
// A failed check degrades gracefully: every URL is treated as new, which
// only costs redundant content fetches since the upsert is idempotent.
func (s *Service) checkExisting(ctx context.Context, articles []*entity.Article) map[string]bool {
	if len(articles) == 0 {
		return map[string]bool{}
	}
	urls := make([]string, 0, len(articles))
	for _, art := range articles {
		urls = append(urls, art.URL)
	}
	existsMap, err := s.ArticleRepo.ExistsByURLBatch(ctx, urls)
	if err != nil {
		slog.Warn("failed to batch check URLs, treating all as new",
			slog.Int("urls", len(urls)),
			slog.Any("error", err))
		return map[string]bool{}
	}
	return existsMap
}

// processCandidates enhances content and upserts articles in parallel.
//
// Error Handling:
//   - Context cancellation (context.Canceled, context.DeadlineExceeded): propagates immediately
//   - Upsert errors: logged and counted in stats.Errors, processing continues
//   - Content fetch errors: fall back to the upstream snippet
func (s *Service) processCandidates(ctx context.Context, candidates []candidate, stats *Stats) error {
	parallelism := s.contentConfig.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}
	contentSem := make(chan struct{}, parallelism)
	eg, egCtx := errgroup.WithContext(ctx)

	for _, c := range candidates {
		cand := c

		eg.Go(func() error {
			// Content enhancement only pays off for unseen URLs; a known
			// URL was either enhanced on insert or will be next run.
			if !cand.exists {
				contentSem <- struct{}{}
				s.enhanceContent(egCtx, cand.article)
				<-contentSem
			}

			inserted, err := s.ArticleRepo.Upsert(egCtx, cand.article)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				atomic.AddInt64(&stats.Errors, 1)
				metrics.RecordIngestOutcome("error")
				slog.Warn("failed to upsert article, skipping",
					slog.String("url", cand.article.URL),
					slog.String("title", cand.article.Title),
					slog.Any("error", err))
				return nil
			}

			if inserted {
				atomic.AddInt64(&stats.Ingested, 1)
				metrics.RecordIngestOutcome("inserted")
				s.notifyNewArticle(cand.article, cand.source)
			} else {
				atomic.AddInt64(&stats.Updated, 1)
				metrics.RecordIngestOutcome("updated")
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("process headlines: %w", err)
	}
	return nil
}

// enhanceContent replaces the article's snippet with the full fetched text
// when the snippet is below the configured threshold. It never fails:
// on any fetch error the snippet is kept as-is.
func (s *Service) enhanceContent(ctx context.Context, art *entity.Article) {
	logger := slog.Default()

	if s.ContentFetcher == nil || !s.contentConfig.Enabled {
		return
	}

	snippetLength := 0
	if art.Content != nil {
		snippetLength = len(*art.Content)
	}
	if snippetLength >= s.contentConfig.Threshold {
		logger.Debug("snippet sufficient, skipping content fetch",
			slog.String("url", art.URL),
			slog.Int("snippet_length", snippetLength),
			slog.Int("threshold", s.contentConfig.Threshold))
		metrics.RecordContentFetchSkipped()
		return
	}

	fetchStart := time.Now()
	fullContent, err := s.ContentFetcher.FetchContent(ctx, art.URL)
	fetchDuration := time.Since(fetchStart)

	if err != nil {
		logger.Warn("content fetch failed, keeping snippet",
			slog.String("url", art.URL),
			slog.Any("error", err),
			slog.Duration("fetch_duration", fetchDuration))
		metrics.RecordContentFetchFailed(fetchDuration)
		return
	}

	metrics.RecordContentFetchSuccess(fetchDuration)

	// Extracted boilerplate can be shorter than the provider snippet;
	// keep whichever carries more text.
	if len(fullContent) > snippetLength {
		art.Content = &fullContent
		logger.Debug("content enhanced",
			slog.String("url", art.URL),
			slog.Int("snippet_length", snippetLength),
			slog.Int("fetched_length", len(fullContent)))
	}
}

// notifyNewArticle dispatches a fire-and-forget notification for a freshly
// inserted article. A background context detaches delivery from the run.
func (s *Service) notifyNewArticle(art *entity.Article, src *entity.Source) {
	if s.NotifyService == nil {
		return
	}
	if err := s.NotifyService.NotifyNewArticle(context.Background(), art, src); err != nil {
		slog.Warn("failed to dispatch notification",
			slog.Int64("article_id", art.ID),
			slog.String("url", art.URL),
			slog.Any("error", err))
	}
}
