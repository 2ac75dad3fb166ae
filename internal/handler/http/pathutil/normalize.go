package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at initialization.
var pathPatterns = []*pathPattern{
	{regexp.MustCompile(`^/articles/\d+/comments$`), "/articles/:id/comments"},
	{regexp.MustCompile(`^/articles/\d+/favorite$`), "/articles/:id/favorite"},
	{regexp.MustCompile(`^/articles/\d+/bookmark$`), "/articles/:id/bookmark"},
	{regexp.MustCompile(`^/articles/\d+$`), "/articles/:id"},
	{regexp.MustCompile(`^/comments/\d+$`), "/comments/:id"},
	{regexp.MustCompile(`^/sources/\d+$`), "/sources/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths with IDs (e.g. /articles/123) become template
// form (/articles/:id); static paths pass through unchanged.
//
// Query parameters and trailing slashes are stripped first:
//
//	NormalizePath("/articles/123?page=1")  // "/articles/:id"
//	NormalizePath("/articles/123/")        // "/articles/:id"
//	NormalizePath("/articles/search")      // "/articles/search"
//	NormalizePath("/health")               // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
