package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/maviles7/dailydose/internal/domain/entity"
)

// KafkaConfig contains configuration for publishing new-article events to Kafka.
type KafkaConfig struct {
	// Enabled indicates whether Kafka event publishing is enabled
	Enabled bool

	// Brokers is the list of Kafka broker addresses
	Brokers []string

	// Topic is the topic new-article events are published to
	Topic string

	// WriteTimeout bounds a single publish attempt
	WriteTimeout time.Duration
}

// ArticleEvent is the JSON payload published for each newly ingested article.
// The article URL doubles as the message key so repeated ingests of the same
// article land on the same partition.
type ArticleEvent struct {
	ArticleID   int64     `json:"article_id"`
	SourceName  string    `json:"source_name"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"published_at"`
}

// KafkaNotifier publishes new-article events to a Kafka topic.
// Writes are synchronous so a broker outage surfaces as an error the caller
// can count, rather than a silently dropped event.
type KafkaNotifier struct {
	config KafkaConfig
	writer *kafka.Writer
}

// NewKafkaNotifier creates a new KafkaNotifier with the specified configuration.
func NewKafkaNotifier(config KafkaConfig) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &KafkaNotifier{
		config: config,
		writer: writer,
	}
}

// buildMessage converts an article and its source into a Kafka message.
func buildMessage(article *entity.Article, source *entity.Source) (kafka.Message, error) {
	event := ArticleEvent{
		ArticleID:   article.ID,
		SourceName:  source.Name,
		Title:       article.Title,
		URL:         article.URL,
		Category:    article.Category,
		PublishedAt: article.PublishedAt,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal article event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(article.URL),
		Value: value,
		Time:  time.Now(),
	}, nil
}

// NotifyArticle publishes a new-article event to the configured topic.
// This method implements the Notifier interface.
func (k *KafkaNotifier) NotifyArticle(ctx context.Context, article *entity.Article, source *entity.Source) error {
	msg, err := buildMessage(article, source)
	if err != nil {
		return err
	}

	if k.config.WriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, k.config.WriteTimeout)
		defer cancel()
	}

	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write message to kafka: %w", err)
	}

	slog.Debug("published article event",
		slog.Int64("article_id", article.ID),
		slog.String("topic", k.config.Topic),
		slog.String("url", article.URL))

	return nil
}

// Close closes the underlying Kafka writer.
func (k *KafkaNotifier) Close() error {
	return k.writer.Close()
}
