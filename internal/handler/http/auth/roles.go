// Package auth provides JWT-based authentication for the HTTP API: token
// issuance from environment-backed credentials and role-gated authorization
// middleware.
package auth

import "strings"

// Role constants used in JWT claims and permission checks.
const (
	// RoleAdmin has full access to all endpoints and methods.
	RoleAdmin = "admin"
	// RoleViewer has read-only access to the resource endpoints.
	RoleViewer = "viewer"
)

// Permission defines the operations a role may perform.
type Permission struct {
	AllowedMethods []string
	// AllowedPaths supports trailing "/*" prefix wildcards; "/*" matches
	// everything.
	AllowedPaths []string
}

// RolePermissions maps each role to its allowed operations. Admin writes,
// viewer reads.
var RolePermissions = map[string]Permission{
	RoleAdmin: {
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedPaths:   []string{"/*"},
	},
	RoleViewer: {
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedPaths: []string{
			"/articles",
			"/articles/*",
			"/sources",
			"/sources/*",
			"/topics",
			"/topics/*",
		},
	},
}

// checkRolePermission reports whether a role may perform method on path.
// Unknown or empty roles are always denied.
func checkRolePermission(role, method, path string) bool {
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

// matchesPathPattern reports whether path matches any pattern. A pattern
// ending in "/*" matches its prefix exactly and all subpaths; other patterns
// require an exact match.
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
