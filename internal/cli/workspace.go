package cli

import (
	"os"
	"path/filepath"
)

// ActiveFileEnv names the environment variable editors can set instead of
// passing the file as an argument.
const ActiveFileEnv = "GOTOTEST_ACTIVE_FILE"

// cliWorkspace adapts command line state to port.Workspace.
type cliWorkspace struct {
	root   string
	active string
}

// newWorkspace resolves the workspace root and active file. A root that is
// not an existing directory means no workspace.
func newWorkspace(root string, args []string) cliWorkspace {
	ws := cliWorkspace{}

	if info, err := os.Stat(root); err == nil && info.IsDir() {
		if abs, err := filepath.Abs(root); err == nil {
			ws.root = abs
		}
	}

	active := os.Getenv(ActiveFileEnv)
	if len(args) > 0 {
		active = args[0]
	}
	if active != "" {
		if abs, err := filepath.Abs(active); err == nil {
			ws.active = abs
		}
	}

	return ws
}

func (w cliWorkspace) Root() string       { return w.root }
func (w cliWorkspace) ActiveFile() string { return w.active }
