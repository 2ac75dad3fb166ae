package pagination

// Metadata is the pagination block included in list responses.
type Metadata struct {
	Total      int64 `json:"total"`       // Items across all pages
	Page       int   `json:"page"`        // Current page, 1-based
	Limit      int   `json:"limit"`       // Items per page
	TotalPages int   `json:"total_pages"` // Derived from Total and Limit
}
