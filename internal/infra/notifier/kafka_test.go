package notifier

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBuildMessage(t *testing.T) {
	art := testArticle()
	src := testSource()

	msg, err := buildMessage(art, src)
	if err != nil {
		t.Fatalf("buildMessage() error = %v", err)
	}

	if string(msg.Key) != art.URL {
		t.Errorf("expected message key to be the article URL, got %q", string(msg.Key))
	}

	var event ArticleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if event.ArticleID != 42 {
		t.Errorf("unexpected article_id %d", event.ArticleID)
	}
	if event.SourceName != "Example News" {
		t.Errorf("unexpected source_name %q", event.SourceName)
	}
	if event.Category != "tech" {
		t.Errorf("unexpected category %q", event.Category)
	}
	if !event.PublishedAt.Equal(time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected published_at %v", event.PublishedAt)
	}
}

func TestNewKafkaNotifier(t *testing.T) {
	n := NewKafkaNotifier(KafkaConfig{
		Enabled: true,
		Brokers: []string{"localhost:9092"},
		Topic:   "articles.new",
	})
	if n.writer == nil {
		t.Fatal("expected writer to be configured")
	}
	if n.writer.Topic != "articles.new" {
		t.Errorf("unexpected topic %q", n.writer.Topic)
	}
	_ = n.Close()
}
