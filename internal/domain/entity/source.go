package entity

import "time"

// Source represents a news outlet as reported by the upstream API.
// Identity is the exact, case-sensitive name. Sources are created lazily by
// the ingestion pipeline on first sighting and never updated or deleted by it.
type Source struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Validate checks the Source entity fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return nil
}
