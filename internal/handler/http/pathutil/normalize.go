package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns lists the dynamic routes. Static routes such as
// /api/tutorials/published never match because \d+ requires digits.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/tutorials/\d+$`), Template: "/api/tutorials/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /api/tutorials/123) to template format
// (e.g., /api/tutorials/:id). Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/api/tutorials/123")        // "/api/tutorials/:id"
//	NormalizePath("/api/tutorials/published")  // "/api/tutorials/published" (unchanged)
//	NormalizePath("/health")                   // "/health" (unchanged)
//	NormalizePath("/api/tutorials/123?x=1")    // "/api/tutorials/:id"
//	NormalizePath("/api/tutorials/123/")       // "/api/tutorials/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
