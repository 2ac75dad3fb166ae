// Package pathutil provides helpers for extracting typed values from URL paths.
package pathutil

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ID extracts a positive integer path parameter from a request routed
// through an http.ServeMux pattern (e.g. "GET /articles/{id}").
//
// Returns ErrInvalidID when the value is missing, non-numeric, or <= 0.
func ID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
