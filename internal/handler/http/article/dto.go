// Package article provides HTTP handlers for the article read endpoints:
// paginated listing, keyword search, and the detail view with source name
// and comment count.
package article

import (
	"time"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/repository"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          int64     `json:"id" example:"1"`
	SourceID    int64     `json:"source_id" example:"1"`
	SourceName  string    `json:"source_name,omitempty" example:"The Daily Wire"`
	Author      *string   `json:"author,omitempty" example:"Jane Smith"`
	Title       string    `json:"title" example:"Markets rally after rate decision"`
	Description string    `json:"description" example:"Stocks climbed on Friday after..."`
	URL         string    `json:"url" example:"https://example.com/article/1"`
	ImageURL    *string   `json:"image_url,omitempty" example:"https://example.com/img/1.jpg"`
	PublishedAt time.Time `json:"published_at" example:"2026-08-29T10:00:00Z"`
	Content     *string   `json:"content,omitempty"`
	Category    string    `json:"category" example:"business"`
	CreatedAt   time.Time `json:"created_at" example:"2026-08-29T12:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2026-08-29T12:00:00Z"`
}

// DetailDTO is the detail view payload: the article plus its comment count.
type DetailDTO struct {
	DTO
	CommentCount int64 `json:"comment_count" example:"3"`
}

func toDTO(a *entity.Article, sourceName string) DTO {
	return DTO{
		ID:          a.ID,
		SourceID:    a.SourceID,
		SourceName:  sourceName,
		Author:      a.Author,
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		ImageURL:    a.ImageURL,
		PublishedAt: a.PublishedAt,
		Content:     a.Content,
		Category:    a.Category,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toDTOs(list []repository.ArticleWithSource) []DTO {
	out := make([]DTO, 0, len(list))
	for _, item := range list {
		out = append(out, toDTO(item.Article, item.SourceName))
	}
	return out
}
