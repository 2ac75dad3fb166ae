package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/maviles7/dailydose/internal/domain/entity"
)

// normalize converts a raw headline into a canonical article.
// Required fields are source name, title, url, and a parseable published_at;
// a record missing any of them is rejected with a descriptive error so the
// caller can skip it.
//
// The returned article has no SourceID yet; the caller resolves the source
// by name and fills it in.
func normalize(h Headline) (*entity.Article, error) {
	title := strings.TrimSpace(stripHTML(h.Title))
	if title == "" {
		return nil, fmt.Errorf("missing title")
	}
	if strings.TrimSpace(h.SourceName) == "" {
		return nil, fmt.Errorf("missing source name")
	}
	if err := entity.ValidateURL(h.URL); err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	publishedAt, err := parseTimestamp(h.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid published_at %q: %w", h.PublishedAt, err)
	}

	art := &entity.Article{
		Title:       title,
		Description: strings.TrimSpace(stripHTML(h.Description)),
		URL:         h.URL,
		PublishedAt: publishedAt,
		Category:    pickCategory(h.Categories),
	}

	if author := strings.TrimSpace(h.Author); author != "" {
		art.Author = &author
	}
	if imageURL := strings.TrimSpace(h.ImageURL); imageURL != "" {
		art.ImageURL = &imageURL
	}
	if content := strings.TrimSpace(stripHTML(h.Content)); content != "" {
		art.Content = &content
	}

	return art, nil
}

// parseTimestamp accepts RFC 3339 timestamps with or without fractional
// seconds, which covers both supported providers.
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, strings.TrimSpace(s))
}

// pickCategory returns the first non-empty category, or the default.
func pickCategory(categories []string) string {
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			return strings.ToLower(c)
		}
	}
	return entity.DefaultCategory
}

// stripHTML removes markup from provider-supplied text. Some providers embed
// tags in descriptions and snippets. Returns the input unchanged when it does
// not parse as HTML.
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
