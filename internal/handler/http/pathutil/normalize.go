package pathutil

import (
	"regexp"
	"strings"
)

// pathPatterns maps dynamic routes to templates, most specific first.
// Pre-compiled at init so normalization stays cheap on the hot path.
var pathPatterns = []struct {
	pattern  *regexp.Regexp
	template string
}{
	{pattern: regexp.MustCompile(`^/articles/\d+$`), template: "/articles/:id"},
	{pattern: regexp.MustCompile(`^/sources/\d+$`), template: "/sources/:id"},
	{pattern: regexp.MustCompile(`^/topics/\d+$`), template: "/topics/:id"},
}

// NormalizePath collapses ID-bearing paths into templates so metrics labels
// stay bounded: /articles/123 becomes /articles/:id. Static paths pass
// through unchanged. Query strings and trailing slashes are stripped first.
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
