package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/maviles7/dailydose/internal/domain/entity"
)

func validHeadline() Headline {
	return Headline{
		SourceName:  "example.com",
		Author:      "Jane Doe",
		Title:       "Go 1.25 released",
		Description: "The Go team announced Go 1.25.",
		URL:         "https://example.com/go-1-25",
		ImageURL:    "https://example.com/go.png",
		PublishedAt: "2025-08-01T12:00:00Z",
		Content:     "The Go team announced Go 1.25 today.",
		Categories:  []string{"Tech"},
	}
}

func TestNormalize_Valid(t *testing.T) {
	art, err := normalize(validHeadline())
	if err != nil {
		t.Fatalf("normalize() error = %v", err)
	}

	if art.Title != "Go 1.25 released" {
		t.Errorf("unexpected title %q", art.Title)
	}
	if art.Author == nil || *art.Author != "Jane Doe" {
		t.Errorf("unexpected author %v", art.Author)
	}
	if art.Category != "tech" {
		t.Errorf("category should be lowercased, got %q", art.Category)
	}
	want := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	if !art.PublishedAt.Equal(want) {
		t.Errorf("unexpected published_at %v", art.PublishedAt)
	}
	if art.SourceID != 0 {
		t.Errorf("normalize should not resolve the source, got SourceID %d", art.SourceID)
	}
}

func TestNormalize_OptionalFieldsEmpty(t *testing.T) {
	h := validHeadline()
	h.Author = "  "
	h.ImageURL = ""
	h.Content = ""
	h.Categories = nil

	art, err := normalize(h)
	if err != nil {
		t.Fatalf("normalize() error = %v", err)
	}
	if art.Author != nil {
		t.Errorf("blank author should yield nil, got %q", *art.Author)
	}
	if art.ImageURL != nil {
		t.Errorf("empty image URL should yield nil, got %q", *art.ImageURL)
	}
	if art.Content != nil {
		t.Errorf("empty content should yield nil, got %q", *art.Content)
	}
	if art.Category != entity.DefaultCategory {
		t.Errorf("expected default category, got %q", art.Category)
	}
}

func TestNormalize_FractionalSeconds(t *testing.T) {
	h := validHeadline()
	h.PublishedAt = "2025-08-01T12:00:00.000000Z"

	art, err := normalize(h)
	if err != nil {
		t.Fatalf("normalize() error = %v", err)
	}
	want := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	if !art.PublishedAt.Equal(want) {
		t.Errorf("unexpected published_at %v", art.PublishedAt)
	}
}

func TestNormalize_StripsHTML(t *testing.T) {
	h := validHeadline()
	h.Title = "<b>Breaking:</b>  markets   rally"
	h.Description = "<p>First paragraph.</p><p>Second.</p>"

	art, err := normalize(h)
	if err != nil {
		t.Fatalf("normalize() error = %v", err)
	}
	if art.Title != "Breaking: markets rally" {
		t.Errorf("unexpected title %q", art.Title)
	}
	if strings.ContainsAny(art.Description, "<>") {
		t.Errorf("description still contains markup: %q", art.Description)
	}
}

func TestNormalize_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Headline)
	}{
		{"missing title", func(h *Headline) { h.Title = "" }},
		{"markup-only title", func(h *Headline) { h.Title = "<p> </p>" }},
		{"missing source name", func(h *Headline) { h.SourceName = " " }},
		{"missing url", func(h *Headline) { h.URL = "" }},
		{"relative url", func(h *Headline) { h.URL = "/articles/1" }},
		{"missing published_at", func(h *Headline) { h.PublishedAt = "" }},
		{"garbage published_at", func(h *Headline) { h.PublishedAt = "yesterday" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHeadline()
			tt.mutate(&h)
			if _, err := normalize(h); err == nil {
				t.Error("expected normalize() to reject the headline")
			}
		})
	}
}

func TestPickCategory(t *testing.T) {
	if got := pickCategory([]string{"", " ", "Business", "tech"}); got != "business" {
		t.Errorf("expected first non-empty category, got %q", got)
	}
	if got := pickCategory(nil); got != entity.DefaultCategory {
		t.Errorf("expected default category, got %q", got)
	}
}
