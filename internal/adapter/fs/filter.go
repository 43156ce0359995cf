package fs

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter excludes workspace paths matching any of its doublestar globs.
type Filter struct {
	excludes []string
}

func NewFilter(excludes []string) *Filter {
	return &Filter{excludes: excludes}
}

// Excluded reports whether relPath (relative to the workspace root) is excluded.
func (f *Filter) Excluded(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range f.excludes {
		matched, err := doublestar.Match(pattern, relPath)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// ValidatePatterns returns the first malformed glob, if any.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("%w: %q", doublestar.ErrBadPattern, p)
		}
	}
	return nil
}
