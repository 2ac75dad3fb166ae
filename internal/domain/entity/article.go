// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Article and
// Source, along with their validation rules and domain-specific errors.
package entity

import "time"

// DefaultCategory is assigned to articles whose upstream record carries no category.
const DefaultCategory = "general"

// Article represents a news article pulled from an upstream news API.
// The URL is the business key: re-ingesting a record with a known URL
// overwrites the mutable fields instead of creating a second row.
type Article struct {
	ID          int64
	SourceID    int64
	Author      *string
	Title       string
	Description string
	URL         string
	ImageURL    *string
	PublishedAt time.Time
	Content     *string
	Category    string
	UserID      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
