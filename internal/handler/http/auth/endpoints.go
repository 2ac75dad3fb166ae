package auth

import "strings"

// PublicEndpoints lists paths reachable without a token: orchestration
// probes, the Prometheus scrape target, API docs, and the token endpoint
// itself.
var PublicEndpoints = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/swagger/",
	"/auth/token",
}

// IsPublicEndpoint reports whether path may be served without authentication.
// Entries ending in '/' match by prefix; all others match exactly, with an
// optional trailing slash or query string. Subpaths of exact entries stay
// protected, so /health/detail is not public even though /health is.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}
		if path == endpoint || path == endpoint+"/" {
			return true
		}
		if strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}
