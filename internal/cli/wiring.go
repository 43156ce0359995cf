package cli

import (
	"fmt"
	"io"
	"os"

	"gototest/config"
	"gototest/internal/adapter/editor"
	"gototest/internal/adapter/fs"
	"gototest/internal/adapter/locator"
	"gototest/internal/adapter/prompt"
	"gototest/internal/adapter/similarity"
	"gototest/internal/adapter/store"
	"gototest/internal/port"
	"gototest/internal/usecase"
)

// newResolveUseCase wires the resolver from configuration.
func newResolveUseCase(cfg *config.Config, stdin *os.File, stdout io.Writer) (*usecase.ResolveUseCase, error) {
	if err := fs.ValidatePatterns(cfg.Workspace.Excludes); err != nil {
		return nil, fmt.Errorf("invalid workspace.excludes: %w", err)
	}

	chooser, err := prompt.New(cfg.Prompt.Mode, stdin, os.Stderr)
	if err != nil {
		return nil, err
	}

	return usecase.NewResolveUseCase(
		usecase.ResolveConfig{
			SpecFilePatterns: cfg.Patterns.SpecFilePatterns,
			Excludes:         cfg.Workspace.Excludes,
		},
		locator.NewLocator(fs.NewChecker()),
		similarity.NewDisambiguator(similarity.DefaultTolerance),
		chooser,
		editor.NewOpener(cfg.Open.Command, stdout),
		logger,
	), nil
}

// openHistory opens the jump history of the workspace at dir.
func openHistory(dir string) (port.JumpHistory, error) {
	if err := config.EnsureStateDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", config.DirName, err)
	}
	st, err := store.NewBoltStore(config.HistoryDBPath(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return st, nil
}
