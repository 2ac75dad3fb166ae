package ingest

import "context"

// Headline is a raw record as returned by an upstream news provider,
// before validation and normalization.
type Headline struct {
	SourceName  string
	Author      string
	Title       string
	Description string
	URL         string
	ImageURL    string
	PublishedAt string
	Content     string
	Categories  []string
}

// HeadlineFetcher fetches the current top headlines from an upstream provider.
//
// Implementations never return an error: an upstream failure (non-200,
// transport error, malformed payload) yields an empty slice, after logging a
// warning and recording a metric. Retrying is left to the next scheduled run.
type HeadlineFetcher interface {
	FetchTop(ctx context.Context) []Headline
}

// ContentFetcher fetches full article content from a URL.
// Implementations extract clean article text from web pages and must prevent
// SSRF, enforce size limits, and enforce timeouts.
type ContentFetcher interface {
	// FetchContent fetches and extracts article content from the given URL.
	//
	// Errors:
	//   - ErrInvalidURL: URL format is invalid or uses unsupported scheme
	//   - ErrPrivateIP: URL resolves to a private IP address
	//   - ErrTooManyRedirects: redirect chain exceeds configured maximum
	//   - ErrBodyTooLarge: response body exceeds size limit
	//   - ErrTimeout: request timed out
	//   - ErrReadabilityFailed: content extraction failed
	//
	// The caller should handle errors gracefully and fall back to the
	// upstream snippet.
	FetchContent(ctx context.Context, url string) (string, error)
}
