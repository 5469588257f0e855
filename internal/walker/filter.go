package walker

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are directory names never descended into.
var DefaultExcludes = []string{
	".git",
	".svn",
	".hg",
	"node_modules",
	".idea",
	".vscode",
}

func shouldExcludeDir(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

// MatchesInclude reports whether relPath matches an include pattern.
// An empty pattern list includes nothing.
func MatchesInclude(relPath string, patterns []string) bool {
	return matchesAny(relPath, patterns)
}

// MatchesExclude reports whether relPath matches an exclude pattern.
func MatchesExclude(relPath string, patterns []string) bool {
	return matchesAny(relPath, patterns)
}

// matchesAny matches the slash-separated relPath against doublestar globs.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}
