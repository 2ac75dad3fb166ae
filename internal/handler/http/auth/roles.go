package auth

import "strings"

// Roles carried in JWT claims and checked on every protected request.
const (
	// RoleAdmin has full access, including the manual ingestion trigger.
	RoleAdmin = "admin"
	// RoleMember can read articles and manage their own favorites,
	// bookmarks, and comments, but cannot reach operational endpoints.
	RoleMember = "member"
)

// Permission describes what a role may do: which HTTP methods, on which
// path patterns. Patterns ending in "/*" match the prefix and everything
// under it; anything else is an exact match.
type Permission struct {
	AllowedMethods []string
	AllowedPaths   []string
}

// RolePermissions is the authorization table. Members get the full reader
// surface plus their own interactions; ingestion control stays admin-only.
var RolePermissions = map[string]Permission{
	RoleAdmin: {
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedPaths:   []string{"/*"},
	},
	RoleMember: {
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedPaths: []string{
			"/articles",
			"/articles/*",
			"/favorites",
			"/bookmarks",
			"/comments/*",
			"/sources",
			"/sources/*",
			"/swagger/*",
		},
	},
}

// checkRolePermission reports whether role may issue method against path.
// Unknown and empty roles are always denied.
func checkRolePermission(role, method, path string) bool {
	if role == "" {
		return false
	}
	perm, exists := RolePermissions[role]
	if !exists {
		return false
	}

	methodAllowed := false
	for _, m := range perm.AllowedMethods {
		if m == method {
			methodAllowed = true
			break
		}
	}
	if !methodAllowed {
		return false
	}

	return matchesPathPattern(path, perm.AllowedPaths)
}

func matchesPathPattern(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "/*" {
			return true
		}
		if strings.HasSuffix(pattern, "/*") {
			prefix := strings.TrimSuffix(pattern, "/*")
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
			continue
		}
		if path == pattern {
			return true
		}
	}
	return false
}
