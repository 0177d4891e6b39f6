package scan

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchesAny checks if relPath matches any of the given glob patterns.
// Patterns support ** via doublestar and are also tried against the bare
// filename, so "dash*" matches "sub/dashboard.html".
func MatchesAny(relPath string, patterns []string) bool {
	// Normalize to forward slashes for consistent matching.
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
