package fs

import "os"

// Checker is the PathChecker backed by the real filesystem.
type Checker struct{}

func NewChecker() Checker {
	return Checker{}
}

// Exists reports whether path can be stat'ed.
// Any error, including permission errors, counts as "does not exist".
func (Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
