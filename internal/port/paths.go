package port

// PathChecker reports whether a path exists on disk.
type PathChecker interface {
	Exists(path string) bool
}

// PathFilter reports whether a workspace-relative path is excluded from lookups.
type PathFilter interface {
	Excluded(relPath string) bool
}
