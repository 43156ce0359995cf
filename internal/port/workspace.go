package port

import "context"

// Workspace is the host environment a jump runs in.
type Workspace interface {
	// Root returns the workspace root, or "" when no workspace is open.
	Root() string

	// ActiveFile returns the absolute path of the active file, or "" when none.
	ActiveFile() string
}

// FileOpener shows a file to the user.
type FileOpener interface {
	Open(ctx context.Context, path string) error
}

// Chooser asks a human to pick one of several paths.
// ok is false when the human declined to choose.
type Chooser interface {
	Choose(ctx context.Context, options []string) (choice string, ok bool, err error)
}
