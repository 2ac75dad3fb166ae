package pathutil_test

import (
	"testing"

	"github.com/maviles7/dailydose/internal/handler/http/pathutil"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/articles/123", "/articles/:id"},
		{"/articles/456/comments", "/articles/:id/comments"},
		{"/articles/7/favorite", "/articles/:id/favorite"},
		{"/articles/7/bookmark", "/articles/:id/bookmark"},
		{"/comments/9", "/comments/:id"},
		{"/sources/3", "/sources/:id"},
		{"/articles/123?page=1", "/articles/:id"},
		{"/articles/123/", "/articles/:id"},
		{"/articles/search", "/articles/search"},
		{"/articles", "/articles"},
		{"/favorites", "/favorites"},
		{"/health", "/health"},
		{"/auth/token", "/auth/token"},
		{"/", "/"},
		{"/unknown/path/123", "/unknown/path/123"},
	}
	for _, tt := range tests {
		if got := pathutil.NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
