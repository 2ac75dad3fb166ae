package pagination

// Response is a generic paginated response wrapper.
// T is the type of the data items (e.g., ArticleResponse).
type Response[T any] struct {
	Data       []T      `json:"data"`       // Data items for the current page
	Pagination Metadata `json:"pagination"` // Pagination metadata
}

// NewResponse creates a new paginated response with data and metadata.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
