package locator

import (
	"path/filepath"

	"gototest/internal/port"
)

// TestsDir is the conventional directory holding specs next to their code.
const TestsDir = "__tests__"

// Locator finds where a counterpart file may live relative to an opened file.
type Locator struct {
	checker port.PathChecker
}

func NewLocator(checker port.PathChecker) *Locator {
	return &Locator{checker: checker}
}

// Paths returns the conventional locations for target, existing or not:
// the __tests__ directory beside originalPath, then its parent directory.
func Paths(target, originalPath string) []string {
	dir := filepath.Dir(originalPath)
	return []string{
		filepath.Join(dir, TestsDir, target),
		filepath.Join(filepath.Dir(dir), target),
	}
}

// Locate returns the conventional locations for target that exist, in order.
func (l *Locator) Locate(target, originalPath string) []string {
	var found []string
	for _, p := range Paths(target, originalPath) {
		if l.checker.Exists(p) {
			found = append(found, p)
		}
	}
	return found
}
